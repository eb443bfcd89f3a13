package repository

import (
	"context"
	"errors"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) ListHaulers(ctx context.Context) ([]ds.Hauler, error) {
	haulers := []ds.Hauler{}
	if err := r.db.WithContext(ctx).Order("id").Find(&haulers).Error; err != nil {
		return nil, apperr.Store("list haulers", err)
	}
	return haulers, nil
}

// GetHauler - served from the cache when one is configured
func (r *Repository) GetHauler(ctx context.Context, id int) (ds.Hauler, error) {
	if hauler, ok := r.cache.Get(ctx, id); ok {
		return hauler, nil
	}

	hauler := ds.Hauler{}
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&hauler).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Hauler{}, apperr.NotFound("hauler with ID %d not found", id)
	}
	if err != nil {
		return ds.Hauler{}, apperr.Store("get hauler", err)
	}

	r.cache.Set(ctx, hauler)
	return hauler, nil
}

func (r *Repository) CreateHauler(ctx context.Context, hauler *ds.Hauler) error {
	return apperr.Store("create hauler", r.db.WithContext(ctx).Create(hauler).Error)
}

// UpdateHauler - reports false when no such hauler exists
func (r *Repository) UpdateHauler(ctx context.Context, hauler *ds.Hauler) (bool, error) {
	res := r.db.WithContext(ctx).Model(&ds.Hauler{}).Where("id = ?", hauler.ID).Updates(map[string]interface{}{
		"name":     hauler.Name,
		"capacity": hauler.Capacity,
	})
	if res.Error != nil {
		return false, apperr.Store("update hauler", res.Error)
	}
	r.cache.Invalidate(ctx, hauler.ID)
	return res.RowsAffected > 0, nil
}

// DeleteHauler - reports false when no such hauler exists
func (r *Repository) DeleteHauler(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&ds.Hauler{}, id)
	if res.Error != nil {
		return false, apperr.Store("delete hauler", res.Error)
	}
	r.cache.Invalidate(ctx, id)
	return res.RowsAffected > 0, nil
}
