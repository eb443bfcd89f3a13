package service

import (
	"context"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/ds"
)

// HaulerStore - persistence for haulers. Haulers have no relation to docks,
// so nothing here goes through the guard.
type HaulerStore interface {
	ListHaulers(ctx context.Context) ([]ds.Hauler, error)
	GetHauler(ctx context.Context, id int) (ds.Hauler, error)
	CreateHauler(ctx context.Context, hauler *ds.Hauler) error
	UpdateHauler(ctx context.Context, hauler *ds.Hauler) (bool, error)
	DeleteHauler(ctx context.Context, id int) (bool, error)
}

type Haulers struct {
	store HaulerStore
}

func NewHaulers(store HaulerStore) *Haulers {
	return &Haulers{store: store}
}

func (h *Haulers) List(ctx context.Context) ([]ds.Hauler, error) {
	return h.store.ListHaulers(ctx)
}

func (h *Haulers) Get(ctx context.Context, id int) (ds.Hauler, error) {
	return h.store.GetHauler(ctx, id)
}

func (h *Haulers) Create(ctx context.Context, hauler ds.Hauler) (ds.Hauler, error) {
	if err := validateHauler(hauler); err != nil {
		return ds.Hauler{}, err
	}
	hauler.ID = 0
	if err := h.store.CreateHauler(ctx, &hauler); err != nil {
		return ds.Hauler{}, err
	}
	return hauler, nil
}

func (h *Haulers) Update(ctx context.Context, id int, hauler ds.Hauler) (ds.Hauler, error) {
	if err := validateHauler(hauler); err != nil {
		return ds.Hauler{}, err
	}
	hauler.ID = id
	updated, err := h.store.UpdateHauler(ctx, &hauler)
	if err != nil {
		return ds.Hauler{}, err
	}
	if !updated {
		return ds.Hauler{}, apperr.NotFound("hauler with ID %d not found", id)
	}
	return hauler, nil
}

func (h *Haulers) Delete(ctx context.Context, id int) error {
	deleted, err := h.store.DeleteHauler(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("hauler with ID %d not found", id)
	}
	return nil
}
