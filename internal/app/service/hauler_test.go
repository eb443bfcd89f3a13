package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/ds"
)

func TestHaulerLifecycle(t *testing.T) {
	ctx := context.Background()
	h := NewHaulers(newMemStore())

	created, err := h.Create(ctx, ds.Hauler{Name: "Oceanic Haulers", Capacity: 10})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	updated, err := h.Update(ctx, created.ID, ds.Hauler{Name: "Oceanic Haulers", Capacity: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Capacity)

	got, err := h.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, h.Delete(ctx, created.ID))
	assert.ErrorIs(t, h.Delete(ctx, created.ID), apperr.ErrNotFound)
	_, err = h.Update(ctx, created.ID, ds.Hauler{Name: "x", Capacity: 1})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestHaulerValidation(t *testing.T) {
	tests := []struct {
		name   string
		hauler ds.Hauler
	}{
		{name: "blank name", hauler: ds.Hauler{Name: "", Capacity: 5}},
		{name: "zero capacity", hauler: ds.Hauler{Name: "Sea Logistics", Capacity: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			_, err := NewHaulers(store).Create(context.Background(), tt.hauler)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			assert.Zero(t, store.writes)
		})
	}
}
