//go:build unit

package cache_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"classroom-reservation/internal/infra/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failGet error
	failInc error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.failInc != nil {
		return redis.NewIntResult(0, f.failInc)
	}
	n, _ := strconv.ParseInt(f.values[key], 10, 64)
	n++
	f.values[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

type summary struct {
	Count int   `json:"count"`
	Total int64 `json:"total"`
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get round-trips JSON under the prefix", func(t *testing.T) {
		client := newFakeRedis()
		c := cache.NewRedisCache(client, "app:")

		require.NoError(t, c.Set(ctx, "k", summary{Count: 2, Total: 150}, time.Minute))
		assert.Equal(t, time.Minute, client.ttls["app:k"])

		var got summary
		hit, err := c.Get(ctx, "k", &got)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, summary{Count: 2, Total: 150}, got)
	})

	t.Run("miss is not an error", func(t *testing.T) {
		c := cache.NewRedisCache(newFakeRedis(), "app:")

		var got summary
		hit, err := c.Get(ctx, "absent", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("backend failure is reported", func(t *testing.T) {
		client := newFakeRedis()
		client.failGet = errors.New("connection refused")
		c := cache.NewRedisCache(client, "app:")

		var got summary
		hit, err := c.Get(ctx, "k", &got)
		assert.Error(t, err)
		assert.False(t, hit)
	})

	t.Run("generation starts at zero and invalidate bumps it per key", func(t *testing.T) {
		client := newFakeRedis()
		c := cache.NewRedisCache(client, "app:")

		gen, err := c.Generation(ctx, "a")
		require.NoError(t, err)
		assert.Zero(t, gen)

		require.NoError(t, c.Invalidate(ctx, "a", "b"))
		require.NoError(t, c.Invalidate(ctx, "a"))

		gen, err = c.Generation(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, int64(2), gen)
		assert.Equal(t, "1", client.values["app:gen:b"])
	})

	t.Run("invalidate failure is reported", func(t *testing.T) {
		client := newFakeRedis()
		client.failInc = errors.New("READONLY")
		c := cache.NewRedisCache(client, "app:")

		assert.ErrorContains(t, c.Invalidate(ctx, "a"), "READONLY")
	})
}
