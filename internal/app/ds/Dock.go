package ds

// Dock is a berth with a fixed ship capacity. Occupancy is never stored here;
// it is always counted from ships.dock_id.
type Dock struct {
	ID       int    `gorm:"primaryKey;column:id" json:"id"`
	Location string `gorm:"column:location;not null" json:"location"`
	Capacity int    `gorm:"column:capacity;not null" json:"capacity"`
}

func (Dock) TableName() string {
	return "docks"
}

// DockOccupancy - derived view of a dock's load
type DockOccupancy struct {
	DockID    int `json:"dockId"`
	Capacity  int `json:"capacity"`
	Occupancy int `json:"occupancy"`
}
