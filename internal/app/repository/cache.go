package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"harbormaster/internal/app/ds"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// HaulerCache is a redis read-through cache for single hauler lookups.
// Docks and ships are never cached: occupancy is always read from the database.
//
// A nil *HaulerCache is valid and caches nothing. Redis failures are logged
// and treated as a miss.
type HaulerCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewHaulerCache(client *redis.Client, ttl time.Duration) *HaulerCache {
	return &HaulerCache{client: client, ttl: ttl}
}

// DialHaulerCache connects to redis and verifies the connection.
func DialHaulerCache(ctx context.Context, endpoint, password string, ttl time.Duration) (*HaulerCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     endpoint,
		Password: password,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return NewHaulerCache(rdb, ttl), nil
}

func haulerKey(id int) string {
	return "hauler:" + strconv.Itoa(id)
}

func (c *HaulerCache) Get(ctx context.Context, id int) (ds.Hauler, bool) {
	if c == nil {
		return ds.Hauler{}, false
	}
	raw, err := c.client.Get(ctx, haulerKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ds.Hauler{}, false
	}
	if err != nil {
		logrus.Warnf("hauler cache get %d: %v", id, err)
		return ds.Hauler{}, false
	}
	var hauler ds.Hauler
	if err := json.Unmarshal(raw, &hauler); err != nil {
		logrus.Warnf("hauler cache decode %d: %v", id, err)
		return ds.Hauler{}, false
	}
	return hauler, true
}

func (c *HaulerCache) Set(ctx context.Context, hauler ds.Hauler) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(hauler)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, haulerKey(hauler.ID), raw, c.ttl).Err(); err != nil {
		logrus.Warnf("hauler cache set %d: %v", hauler.ID, err)
	}
}

func (c *HaulerCache) Invalidate(ctx context.Context, id int) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, haulerKey(id)).Err(); err != nil {
		logrus.Warnf("hauler cache invalidate %d: %v", id, err)
	}
}

func (c *HaulerCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
