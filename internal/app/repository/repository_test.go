package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/ds"
	"harbormaster/internal/app/repository/sqlitetest"
	"harbormaster/internal/app/service"
)

func TestDockCRUD(t *testing.T) {
	ctx := context.Background()
	repo := sqlitetest.Open(t)

	dock := ds.Dock{Location: "North Harbor", Capacity: 2}
	require.NoError(t, repo.CreateDock(ctx, &dock))
	assert.NotZero(t, dock.ID)

	capacity, ok, err := repo.DockCapacity(ctx, dock.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, capacity)

	_, ok, err = repo.DockCapacity(ctx, dock.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)

	dock.Capacity = 4
	dock.Location = "Outer Harbor"
	require.NoError(t, repo.UpdateDock(ctx, &dock))
	got, err := repo.GetDock(ctx, dock.ID)
	require.NoError(t, err)
	assert.Equal(t, dock, got)

	missing := ds.Dock{ID: 999, Location: "x", Capacity: 1}
	assert.ErrorIs(t, repo.UpdateDock(ctx, &missing), apperr.ErrNotFound)

	deleted, err := repo.DeleteDock(ctx, dock.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.DeleteDock(ctx, dock.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.GetDock(ctx, dock.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListEmptyIsNotNil(t *testing.T) {
	ctx := context.Background()
	repo := sqlitetest.Open(t)

	docks, err := repo.ListDocks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, docks)
	assert.Empty(t, docks)

	ships, err := repo.ListShips(ctx)
	require.NoError(t, err)
	assert.NotNil(t, ships)
}

func TestShipOccupancyCounts(t *testing.T) {
	ctx := context.Background()
	repo := sqlitetest.Open(t)

	dock := ds.Dock{Location: "East Harbor", Capacity: 7}
	require.NoError(t, repo.CreateDock(ctx, &dock))

	a := ds.Ship{Name: "Defiant", Type: "Escort-class warship", DockID: &dock.ID}
	b := ds.Ship{Name: "Sulaco", Type: "Military transport", DockID: &dock.ID}
	c := ds.Ship{Name: "Argo", Type: "Ancient Greek galley"}
	for _, s := range []*ds.Ship{&a, &b, &c} {
		require.NoError(t, repo.CreateShip(ctx, s))
	}

	n, err := repo.CountShipsAtDock(ctx, dock.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.CountShipsAtDockExcluding(ctx, dock.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = repo.CountShipsAtDock(ctx, dock.ID+1)
	require.NoError(t, err)
	assert.Zero(t, n)

	// unberth b
	b.DockID = nil
	require.NoError(t, repo.UpdateShip(ctx, &b))
	got, err := repo.GetShip(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DockID)

	n, err = repo.CountShipsAtDock(ctx, dock.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	deleted, err := repo.DeleteShip(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	n, err = repo.CountShipsAtDock(ctx, dock.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAtomicRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := sqlitetest.Open(t)

	err := repo.Atomic(ctx, func(tx service.Store) error {
		d := ds.Dock{Location: "Ghost Harbor", Capacity: 1}
		if err := tx.CreateDock(ctx, &d); err != nil {
			return err
		}
		return apperr.CapacityViolation("abort")
	})
	assert.ErrorIs(t, err, apperr.ErrCapacityViolation)

	docks, err := repo.ListDocks(ctx)
	require.NoError(t, err)
	assert.Empty(t, docks)
}

func TestSeedIsIdempotentAndRespectsCapacity(t *testing.T) {
	ctx := context.Background()
	repo := sqlitetest.Open(t)

	require.NoError(t, repo.Seed(ctx))
	require.NoError(t, repo.Seed(ctx))

	docks, err := repo.ListDocks(ctx)
	require.NoError(t, err)
	assert.Len(t, docks, 3)

	ships, err := repo.ListShips(ctx)
	require.NoError(t, err)
	assert.Len(t, ships, 18)

	haulers, err := repo.ListHaulers(ctx)
	require.NoError(t, err)
	assert.Len(t, haulers, 3)

	for _, d := range docks {
		n, err := repo.CountShipsAtDock(ctx, d.ID)
		require.NoError(t, err)
		assert.LessOrEqual(t, n, d.Capacity, d.Location)
	}
}

func TestSeedFillsOnlyEmptyTables(t *testing.T) {
	ctx := context.Background()
	repo := sqlitetest.Open(t)

	existing := ds.Hauler{Name: "Harbor Tugs", Capacity: 4}
	require.NoError(t, repo.CreateHauler(ctx, &existing))

	require.NoError(t, repo.Seed(ctx))

	haulers, err := repo.ListHaulers(ctx)
	require.NoError(t, err)
	require.Len(t, haulers, 1)
	assert.Equal(t, "Harbor Tugs", haulers[0].Name)

	docks, err := repo.ListDocks(ctx)
	require.NoError(t, err)
	assert.Len(t, docks, 3)

	ships, err := repo.ListShips(ctx)
	require.NoError(t, err)
	assert.Len(t, ships, 18)
}

func TestSeedLeavesShipsUnberthedAtExistingDocks(t *testing.T) {
	ctx := context.Background()
	repo := sqlitetest.Open(t)

	dock := ds.Dock{Location: "Pier 9", Capacity: 1}
	require.NoError(t, repo.CreateDock(ctx, &dock))

	require.NoError(t, repo.Seed(ctx))

	docks, err := repo.ListDocks(ctx)
	require.NoError(t, err)
	assert.Len(t, docks, 1)

	ships, err := repo.ListShips(ctx)
	require.NoError(t, err)
	assert.Len(t, ships, 18)
	for _, s := range ships {
		assert.Nil(t, s.DockID, s.Name)
	}
}

func TestFleetOverSQLite(t *testing.T) {
	ctx := context.Background()
	fleet := service.NewFleet(sqlitetest.Open(t))

	dock, err := fleet.CreateDock(ctx, ds.Dock{Location: "South Harbor", Capacity: 1})
	require.NoError(t, err)

	a, err := fleet.CreateShip(ctx, ds.Ship{Name: "A", Type: "tug", DockID: &dock.ID})
	require.NoError(t, err)

	_, err = fleet.CreateShip(ctx, ds.Ship{Name: "B", Type: "tug", DockID: &dock.ID})
	assert.ErrorIs(t, err, apperr.ErrCapacityViolation)

	assert.ErrorIs(t, fleet.DeleteDock(ctx, dock.ID), apperr.ErrOccupied)

	_, err = fleet.UpdateShip(ctx, a.ID, ds.Ship{Name: "A", Type: "tug", DockID: &dock.ID})
	require.NoError(t, err)

	require.NoError(t, fleet.DeleteShip(ctx, a.ID))
	_, err = fleet.CreateShip(ctx, ds.Ship{Name: "B", Type: "tug", DockID: &dock.ID})
	require.NoError(t, err)

	occ, err := fleet.DockOccupancy(ctx, dock.ID)
	require.NoError(t, err)
	assert.Equal(t, ds.DockOccupancy{DockID: dock.ID, Capacity: 1, Occupancy: 1}, occ)
}
