package service

import (
	"context"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/ds"
	"harbormaster/internal/app/guard"
)

func (f *Fleet) ListDocks(ctx context.Context) ([]ds.Dock, error) {
	return f.store.ListDocks(ctx)
}

func (f *Fleet) GetDock(ctx context.Context, id int) (ds.Dock, error) {
	return f.store.GetDock(ctx, id)
}

// DockOccupancy - capacity and current ship count of a dock
func (f *Fleet) DockOccupancy(ctx context.Context, id int) (ds.DockOccupancy, error) {
	dock, err := f.store.GetDock(ctx, id)
	if err != nil {
		return ds.DockOccupancy{}, err
	}
	count, err := f.store.CountShipsAtDock(ctx, id)
	if err != nil {
		return ds.DockOccupancy{}, err
	}
	return ds.DockOccupancy{DockID: dock.ID, Capacity: dock.Capacity, Occupancy: count}, nil
}

// CreateDock - validates and inserts a dock. A new dock holds no ships, so the
// guard has nothing to decide.
func (f *Fleet) CreateDock(ctx context.Context, dock ds.Dock) (ds.Dock, error) {
	if err := validateDock(dock); err != nil {
		return ds.Dock{}, err
	}
	dock.ID = 0
	if err := f.store.CreateDock(ctx, &dock); err != nil {
		return ds.Dock{}, err
	}
	return dock, nil
}

// UpdateDock - replaces location and capacity. Shrinking is checked against
// occupancy; growth is not.
func (f *Fleet) UpdateDock(ctx context.Context, id int, dock ds.Dock) (ds.Dock, error) {
	if err := validateDock(dock); err != nil {
		return ds.Dock{}, err
	}
	dock.ID = id

	err := f.store.Atomic(ctx, func(tx Store) error {
		current, ok, err := tx.DockCapacity(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("dock with ID %d not found", id)
		}
		if dock.Capacity < current {
			occupancy, err := tx.CountShipsAtDock(ctx, id)
			if err != nil {
				return err
			}
			if !guard.CanShrinkCapacity(dock.Capacity, occupancy) {
				return apperr.CapacityViolation(
					"cannot reduce capacity of dock %d to %d: %d ships are currently at this dock",
					id, dock.Capacity, occupancy)
			}
		}
		return tx.UpdateDock(ctx, &dock)
	})
	if err != nil {
		return ds.Dock{}, err
	}
	return dock, nil
}

// DeleteDock - removes an empty dock
func (f *Fleet) DeleteDock(ctx context.Context, id int) error {
	return f.store.Atomic(ctx, func(tx Store) error {
		_, ok, err := tx.DockCapacity(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("dock with ID %d not found", id)
		}
		occupancy, err := tx.CountShipsAtDock(ctx, id)
		if err != nil {
			return err
		}
		if !guard.CanDeleteDock(occupancy) {
			return apperr.Occupied("dock %d is currently occupied by %d ships", id, occupancy)
		}
		deleted, err := tx.DeleteDock(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return apperr.NotFound("dock with ID %d not found", id)
		}
		return nil
	})
}
