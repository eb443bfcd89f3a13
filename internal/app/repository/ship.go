package repository

import (
	"context"
	"errors"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/ds"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repository) ListShips(ctx context.Context) ([]ds.Ship, error) {
	ships := []ds.Ship{}
	if err := r.db.WithContext(ctx).Order("id").Find(&ships).Error; err != nil {
		return nil, apperr.Store("list ships", err)
	}
	return ships, nil
}

func (r *Repository) GetShip(ctx context.Context, id int) (ds.Ship, error) {
	ship := ds.Ship{}
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&ship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Ship{}, apperr.NotFound("ship with ID %d not found", id)
	}
	if err != nil {
		return ds.Ship{}, apperr.Store("get ship", err)
	}
	return ship, nil
}

// LockShip - GetShip with SELECT ... FOR UPDATE; the lock lasts until the
// enclosing transaction ends
func (r *Repository) LockShip(ctx context.Context, id int) (ds.Ship, error) {
	ship := ds.Ship{}
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&ship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Ship{}, apperr.NotFound("ship with ID %d not found", id)
	}
	if err != nil {
		return ds.Ship{}, apperr.Store("lock ship", err)
	}
	return ship, nil
}

// CountShipsAtDock - occupancy of a dock, zero when the dock is absent
func (r *Repository) CountShipsAtDock(ctx context.Context, dockID int) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&ds.Ship{}).Where("dock_id = ?", dockID).Count(&n).Error; err != nil {
		return 0, apperr.Store("count ships", err)
	}
	return int(n), nil
}

// CountShipsAtDockExcluding - occupancy of a dock not counting shipID
func (r *Repository) CountShipsAtDockExcluding(ctx context.Context, dockID, shipID int) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ds.Ship{}).
		Where("dock_id = ? AND id <> ?", dockID, shipID).
		Count(&n).Error
	if err != nil {
		return 0, apperr.Store("count ships", err)
	}
	return int(n), nil
}

// CreateShip - insert; a dangling dock_id surfaces as NotFound
func (r *Repository) CreateShip(ctx context.Context, ship *ds.Ship) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(ship).Error
	return shipWriteError("create ship", ship.DockID, err)
}

// UpdateShip - replaces name, type and dock_id (NULL unberths the ship)
func (r *Repository) UpdateShip(ctx context.Context, ship *ds.Ship) error {
	var dockID interface{}
	if ship.DockID != nil {
		dockID = *ship.DockID
	}
	res := r.db.WithContext(ctx).Model(&ds.Ship{}).Where("id = ?", ship.ID).Updates(map[string]interface{}{
		"name":    ship.Name,
		"type":    ship.Type,
		"dock_id": dockID,
	})
	if res.Error != nil {
		return shipWriteError("update ship", ship.DockID, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("ship with ID %d not found", ship.ID)
	}
	return nil
}

// DeleteShip - reports false when no such ship exists
func (r *Repository) DeleteShip(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&ds.Ship{}, id)
	if res.Error != nil {
		return false, apperr.Store("delete ship", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func shipWriteError(op string, dockID *int, err error) error {
	if err == nil {
		return nil
	}
	if isFKViolation(err) && dockID != nil {
		return apperr.NotFound("dock with ID %d not found", *dockID)
	}
	return apperr.Store(op, err)
}
