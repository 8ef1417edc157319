package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"classroom-reservation/internal/pkg/config"
	"classroom-reservation/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Client is the subset of *redis.Client the cache needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

const generationPrefix = "gen:"

// RedisCache stores JSON-encoded values under a common key prefix.
type RedisCache struct {
	client Client
	prefix string
}

func NewRedisClient(cfg config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisCache(client Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errs.Wrap(err, "failed to get cache value")
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errs.Wrap(err, "failed to unmarshal cache value")
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "failed to marshal cache value")
	}

	if err := c.client.Set(ctx, c.prefix+key, raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to set cache value")
	}
	return nil
}

func (c *RedisCache) Generation(ctx context.Context, key string) (int64, error) {
	gen, err := c.client.Get(ctx, c.prefix+generationPrefix+key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.Wrapf(err, "failed to read cache generation of %s", key)
	}
	return gen, nil
}

// Invalidate leaves old entries to expire by TTL; generation counters never expire.
func (c *RedisCache) Invalidate(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		if err := c.client.Incr(ctx, c.prefix+generationPrefix+k).Err(); err != nil {
			return errs.Wrapf(err, "failed to invalidate %s", k)
		}
	}
	return nil
}

// NoopCache always misses; used when Redis is disabled.
type NoopCache struct{}

func NewNoopCache() NoopCache {
	return NoopCache{}
}

func (NoopCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (NoopCache) Set(context.Context, string, any, time.Duration) error { return nil }

func (NoopCache) Generation(context.Context, string) (int64, error) { return 0, nil }

func (NoopCache) Invalidate(context.Context, ...string) error { return nil }
