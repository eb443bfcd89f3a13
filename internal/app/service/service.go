// Package service runs dock and ship mutations through the capacity guard.
//
// Every guarded operation has the same shape: validate the payload without
// touching the store, read occupancy, ask the guard, and write only on admit.
// The read and the write share one store transaction in which the dock row is
// locked, so two requests racing for the last berth of a dock serialize.
package service

import (
	"context"
	"strings"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/ds"
)

// Store is the persistence contract the fleet operations depend on.
type Store interface {
	// Atomic runs fn against a transaction-scoped Store. fn's error rolls back.
	Atomic(ctx context.Context, fn func(tx Store) error) error

	// DockCapacity returns the capacity of a dock and locks its row for the
	// rest of the enclosing transaction. ok is false when the dock is absent.
	DockCapacity(ctx context.Context, dockID int) (capacity int, ok bool, err error)
	CountShipsAtDock(ctx context.Context, dockID int) (int, error)
	CountShipsAtDockExcluding(ctx context.Context, dockID, shipID int) (int, error)

	ListDocks(ctx context.Context) ([]ds.Dock, error)
	GetDock(ctx context.Context, id int) (ds.Dock, error)
	CreateDock(ctx context.Context, dock *ds.Dock) error
	UpdateDock(ctx context.Context, dock *ds.Dock) error
	DeleteDock(ctx context.Context, id int) (bool, error)

	ListShips(ctx context.Context) ([]ds.Ship, error)
	GetShip(ctx context.Context, id int) (ds.Ship, error)
	// LockShip reads a ship and locks its row for the rest of the enclosing
	// transaction.
	LockShip(ctx context.Context, id int) (ds.Ship, error)
	CreateShip(ctx context.Context, ship *ds.Ship) error
	UpdateShip(ctx context.Context, ship *ds.Ship) error
	DeleteShip(ctx context.Context, id int) (bool, error)
}

// Fleet orchestrates dock and ship operations. It holds no mutable state and
// is safe for concurrent use.
type Fleet struct {
	store Store
}

func NewFleet(store Store) *Fleet {
	return &Fleet{store: store}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateDock(d ds.Dock) error {
	if blank(d.Location) {
		return apperr.Validation("location is required")
	}
	if d.Capacity <= 0 {
		return apperr.Validation("capacity must be greater than zero")
	}
	return nil
}

func validateShip(s ds.Ship) error {
	if blank(s.Name) {
		return apperr.Validation("name is required")
	}
	if blank(s.Type) {
		return apperr.Validation("type is required")
	}
	return nil
}

func validateHauler(h ds.Hauler) error {
	if blank(h.Name) {
		return apperr.Validation("name is required")
	}
	if h.Capacity <= 0 {
		return apperr.Validation("capacity must be greater than zero")
	}
	return nil
}
