package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"harbormaster/internal/app/apperr"
)

func TestShipWriteError(t *testing.T) {
	dockID := 12
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: fkViolation, Message: "violates foreign key constraint"})

	tests := []struct {
		name   string
		dockID *int
		err    error
		want   apperr.Kind
	}{
		{name: "dangling dock", dockID: &dockID, err: fk, want: apperr.KindNotFound},
		{name: "other pg error", dockID: &dockID, err: &pgconn.PgError{Code: "23505"}, want: apperr.KindStore},
		{name: "connection", dockID: nil, err: errors.New("connection reset"), want: apperr.KindStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shipWriteError("create ship", tt.dockID, tt.err)
			assert.Equal(t, tt.want, apperr.KindOf(got))
		})
	}
	assert.NoError(t, shipWriteError("create ship", &dockID, nil))
}

func TestIsFKViolation(t *testing.T) {
	assert.True(t, isFKViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isFKViolation(errors.New("23503")))
	assert.False(t, isFKViolation(nil))
}
