// Package guard decides whether a dock or ship mutation keeps every dock at or
// below its capacity. It performs no I/O: callers supply occupancy counts read
// from the store.
package guard

// CanAdmitNewShip reports whether a new ship may be berthed at targetDockID.
// An unberthed ship (nil target) is always admitted.
func CanAdmitNewShip(targetDockID *int, occupancy, capacity int) bool {
	if targetDockID == nil {
		return true
	}
	return occupancy < capacity
}

// CanReassignShip reports whether an existing ship may move to targetDockID.
// occupancyExcludingShip must not count the moving ship itself.
func CanReassignShip(targetDockID *int, occupancyExcludingShip, capacity int) bool {
	return CanAdmitNewShip(targetDockID, occupancyExcludingShip, capacity)
}

// CanShrinkCapacity reports whether a dock may take newCapacity given its
// current occupancy. Growth is always admitted.
func CanShrinkCapacity(newCapacity, occupancy int) bool {
	return newCapacity >= occupancy
}

// CanDeleteDock reports whether a dock may be removed.
func CanDeleteDock(occupancy int) bool {
	return occupancy == 0
}
