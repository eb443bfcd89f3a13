package service

import (
	"context"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/ds"
	"harbormaster/internal/app/guard"
)

func (f *Fleet) ListShips(ctx context.Context) ([]ds.Ship, error) {
	return f.store.ListShips(ctx)
}

func (f *Fleet) GetShip(ctx context.Context, id int) (ds.Ship, error) {
	return f.store.GetShip(ctx, id)
}

// CreateShip - inserts a ship, checking the target dock's capacity when one is set
func (f *Fleet) CreateShip(ctx context.Context, ship ds.Ship) (ds.Ship, error) {
	if err := validateShip(ship); err != nil {
		return ds.Ship{}, err
	}
	ship.ID = 0

	if !ship.Berthed() {
		if err := f.store.CreateShip(ctx, &ship); err != nil {
			return ds.Ship{}, err
		}
		return ship, nil
	}

	err := f.store.Atomic(ctx, func(tx Store) error {
		dockID := *ship.DockID
		capacity, ok, err := tx.DockCapacity(ctx, dockID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("dock with ID %d not found", dockID)
		}
		occupancy, err := tx.CountShipsAtDock(ctx, dockID)
		if err != nil {
			return err
		}
		if !guard.CanAdmitNewShip(ship.DockID, occupancy, capacity) {
			return apperr.CapacityViolation("dock with ID %d is at capacity", dockID)
		}
		return tx.CreateShip(ctx, &ship)
	})
	if err != nil {
		return ds.Ship{}, err
	}
	return ship, nil
}

// UpdateShip - replaces name, type and dock assignment. Only a change of dock
// is checked against capacity. The ship row is locked before its current dock
// is compared, so a concurrent move of the same ship cannot slip in between.
func (f *Fleet) UpdateShip(ctx context.Context, id int, ship ds.Ship) (ds.Ship, error) {
	if err := validateShip(ship); err != nil {
		return ds.Ship{}, err
	}
	ship.ID = id

	err := f.store.Atomic(ctx, func(tx Store) error {
		existing, err := tx.LockShip(ctx, id)
		if err != nil {
			return err
		}
		if sameDock(existing.DockID, ship.DockID) || !ship.Berthed() {
			return tx.UpdateShip(ctx, &ship)
		}

		dockID := *ship.DockID
		capacity, ok, err := tx.DockCapacity(ctx, dockID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("dock with ID %d not found", dockID)
		}
		occupancy, err := tx.CountShipsAtDockExcluding(ctx, dockID, id)
		if err != nil {
			return err
		}
		if !guard.CanReassignShip(ship.DockID, occupancy, capacity) {
			return apperr.CapacityViolation("dock with ID %d is at capacity", dockID)
		}
		return tx.UpdateShip(ctx, &ship)
	})
	if err != nil {
		return ds.Ship{}, err
	}
	return ship, nil
}

// DeleteShip - removes a ship. Deleting can only lower occupancy, so no guard.
func (f *Fleet) DeleteShip(ctx context.Context, id int) error {
	deleted, err := f.store.DeleteShip(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("ship with ID %d not found", id)
	}
	return nil
}

func sameDock(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
