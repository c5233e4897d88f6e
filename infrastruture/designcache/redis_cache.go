// Package designcache caches rendered maze blueprints in Redis so that
// identical seeded generation requests are carved once and replayed from
// the cache afterwards.
package designcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	dmn "github.com/beka-birhanu/maze-forge-api/domain"
	"github.com/beka-birhanu/maze-forge-api/service/i"
)

const (
	defaultTTL      = 12 * time.Hour
	lockKeySuffix   = ":forge_lock"
	lockExpiry      = 30 * time.Second
	lockRetryDelay  = 100 * time.Millisecond
	lockMaxAttempts = 64
)

// RedisDesignCache stores serialized blueprints with a TTL and guards
// each key with a redsync mutex while it is being generated.
type RedisDesignCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// New initializes a RedisDesignCache with the provided Redis client and TTL.
// A non-positive TTL falls back to the default.
func New(client *redis.Client, ttl time.Duration) *RedisDesignCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	pool := goredis.NewPool(client)
	return &RedisDesignCache{
		client: client,
		locker: redsync.New(pool),
		ttl:    ttl,
	}
}

// Get returns the cached blueprint for the key, or nil on a miss.
func (c *RedisDesignCache) Get(ctx context.Context, key string) (*dmn.Blueprint, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var blueprint dmn.Blueprint
	if err := json.Unmarshal(payload, &blueprint); err != nil {
		return nil, err
	}
	return &blueprint, nil
}

// Set stores a blueprint under the key with the cache's TTL.
func (c *RedisDesignCache) Set(ctx context.Context, key string, blueprint *dmn.Blueprint) error {
	payload, err := json.Marshal(blueprint)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// Lock takes the per-key generation mutex. The returned function releases it.
func (c *RedisDesignCache) Lock(key string) (i.UnlockFunc, error) {
	mutex := c.locker.NewMutex(key+lockKeySuffix,
		redsync.WithExpiry(lockExpiry),
		redsync.WithRetryDelay(lockRetryDelay),
		redsync.WithTries(lockMaxAttempts),
	)
	if err := mutex.Lock(); err != nil {
		return nil, err
	}

	return func() error {
		_, err := mutex.Unlock()
		return err
	}, nil
}
