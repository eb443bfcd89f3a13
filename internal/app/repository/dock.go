package repository

import (
	"context"
	"errors"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/ds"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repository) ListDocks(ctx context.Context) ([]ds.Dock, error) {
	docks := []ds.Dock{}
	if err := r.db.WithContext(ctx).Order("id").Find(&docks).Error; err != nil {
		return nil, apperr.Store("list docks", err)
	}
	return docks, nil
}

func (r *Repository) GetDock(ctx context.Context, id int) (ds.Dock, error) {
	dock := ds.Dock{}
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&dock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Dock{}, apperr.NotFound("dock with ID %d not found", id)
	}
	if err != nil {
		return ds.Dock{}, apperr.Store("get dock", err)
	}
	return dock, nil
}

// DockCapacity - capacity of a dock; takes a row lock (SELECT ... FOR UPDATE)
// that lasts until the enclosing transaction ends
func (r *Repository) DockCapacity(ctx context.Context, dockID int) (int, bool, error) {
	dock := ds.Dock{}
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "capacity").
		Where("id = ?", dockID).
		Take(&dock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, apperr.Store("read dock capacity", err)
	}
	return dock.Capacity, true, nil
}

// CreateDock - insert; the store assigns the id
func (r *Repository) CreateDock(ctx context.Context, dock *ds.Dock) error {
	return apperr.Store("create dock", r.db.WithContext(ctx).Create(dock).Error)
}

// UpdateDock - replaces location and capacity of an existing dock
func (r *Repository) UpdateDock(ctx context.Context, dock *ds.Dock) error {
	res := r.db.WithContext(ctx).Model(&ds.Dock{}).Where("id = ?", dock.ID).Updates(map[string]interface{}{
		"location": dock.Location,
		"capacity": dock.Capacity,
	})
	if res.Error != nil {
		return apperr.Store("update dock", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("dock with ID %d not found", dock.ID)
	}
	return nil
}

// DeleteDock - reports false when no such dock exists
func (r *Repository) DeleteDock(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&ds.Dock{}, id)
	if isFKViolation(res.Error) {
		return false, apperr.Occupied("dock %d is currently occupied", id)
	}
	if res.Error != nil {
		return false, apperr.Store("delete dock", res.Error)
	}
	return res.RowsAffected > 0, nil
}
