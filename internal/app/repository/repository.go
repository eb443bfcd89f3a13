package repository

import (
	"context"
	"errors"
	"time"

	"harbormaster/internal/app/apperr"
	"harbormaster/internal/app/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	_ service.Store       = (*Repository)(nil)
	_ service.HaulerStore = (*Repository)(nil)
)

// SQLSTATE foreign_key_violation
const fkViolation = "23503"

type Repository struct {
	db    *gorm.DB
	cache *HaulerCache
}

// New opens a PostgreSQL-backed repository. The DSN is read once at startup
// and never changes afterwards.
func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.New(logrus.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB wraps an already opened gorm handle.
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithHaulerCache enables read-through caching of single hauler lookups.
func (r *Repository) WithHaulerCache(cache *HaulerCache) *Repository {
	r.cache = cache
	return r
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Atomic runs fn inside one database transaction. Row locks taken by
// DockCapacity and LockShip are held until fn returns.
func (r *Repository) Atomic(ctx context.Context, fn func(tx service.Store) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx, cache: r.cache})
	})
	return apperr.Store("transaction", err)
}

func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == fkViolation
}
