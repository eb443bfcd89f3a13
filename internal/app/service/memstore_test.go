package service

import (
	"context"
	"sort"
	"sync"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/ds"
)

// memStore is an in-memory Store. Atomic serializes on txMu, standing in for
// the dock row lock the database store takes.
type memStore struct {
	txMu sync.Mutex

	mu      sync.Mutex
	nextID  int
	docks   map[int]ds.Dock
	ships   map[int]ds.Ship
	haulers map[int]ds.Hauler
	writes  int
}

func newMemStore() *memStore {
	return &memStore{
		docks:   map[int]ds.Dock{},
		ships:   map[int]ds.Ship{},
		haulers: map[int]ds.Hauler{},
	}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

func (m *memStore) Atomic(ctx context.Context, fn func(tx Store) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(m)
}

func (m *memStore) DockCapacity(ctx context.Context, dockID int) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docks[dockID]
	return d.Capacity, ok, nil
}

func (m *memStore) countLocked(dockID, excludeShipID int) int {
	n := 0
	for _, s := range m.ships {
		if s.DockID != nil && *s.DockID == dockID && s.ID != excludeShipID {
			n++
		}
	}
	return n
}

func (m *memStore) CountShipsAtDock(ctx context.Context, dockID int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.countLocked(dockID, 0), nil
}

func (m *memStore) CountShipsAtDockExcluding(ctx context.Context, dockID, shipID int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.countLocked(dockID, shipID), nil
}

func (m *memStore) ListDocks(ctx context.Context) ([]ds.Dock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ds.Dock, 0, len(m.docks))
	for _, d := range m.docks {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) GetDock(ctx context.Context, id int) (ds.Dock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docks[id]
	if !ok {
		return ds.Dock{}, apperr.NotFound("dock with ID %d not found", id)
	}
	return d, nil
}

func (m *memStore) CreateDock(ctx context.Context, dock *ds.Dock) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dock.ID = m.id()
	m.docks[dock.ID] = *dock
	m.writes++
	return nil
}

func (m *memStore) UpdateDock(ctx context.Context, dock *ds.Dock) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docks[dock.ID] = *dock
	m.writes++
	return nil
}

func (m *memStore) DeleteDock(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docks[id]; !ok {
		return false, nil
	}
	delete(m.docks, id)
	m.writes++
	return true, nil
}

func (m *memStore) ListShips(ctx context.Context) ([]ds.Ship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ds.Ship, 0, len(m.ships))
	for _, s := range m.ships {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) GetShip(ctx context.Context, id int) (ds.Ship, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.ships[id]
	if !ok {
		return ds.Ship{}, apperr.NotFound("ship with ID %d not found", id)
	}
	return s, nil
}

func (m *memStore) LockShip(ctx context.Context, id int) (ds.Ship, error) {
	return m.GetShip(ctx, id)
}

func (m *memStore) CreateShip(ctx context.Context, ship *ds.Ship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ship.ID = m.id()
	m.ships[ship.ID] = *ship
	m.writes++
	return nil
}

func (m *memStore) UpdateShip(ctx context.Context, ship *ds.Ship) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ships[ship.ID] = *ship
	m.writes++
	return nil
}

func (m *memStore) DeleteShip(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ships[id]; !ok {
		return false, nil
	}
	delete(m.ships, id)
	m.writes++
	return true, nil
}

func (m *memStore) ListHaulers(ctx context.Context) ([]ds.Hauler, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ds.Hauler, 0, len(m.haulers))
	for _, h := range m.haulers {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) GetHauler(ctx context.Context, id int) (ds.Hauler, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.haulers[id]
	if !ok {
		return ds.Hauler{}, apperr.NotFound("hauler with ID %d not found", id)
	}
	return h, nil
}

func (m *memStore) CreateHauler(ctx context.Context, hauler *ds.Hauler) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	hauler.ID = m.id()
	m.haulers[hauler.ID] = *hauler
	m.writes++
	return nil
}

func (m *memStore) UpdateHauler(ctx context.Context, hauler *ds.Hauler) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.haulers[hauler.ID]; !ok {
		return false, nil
	}
	m.haulers[hauler.ID] = *hauler
	m.writes++
	return true, nil
}

func (m *memStore) DeleteHauler(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.haulers[id]; !ok {
		return false, nil
	}
	delete(m.haulers, id)
	m.writes++
	return true, nil
}
