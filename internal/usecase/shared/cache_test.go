//go:build unit

package shared_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"classroom-reservation/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCache is an in-process Cache with the same generation semantics as the Redis adapter.
type memCache struct {
	mu     sync.Mutex
	values map[string][]byte
	gens   map[string]int64
}

func newMemCache() *memCache {
	return &memCache{values: map[string][]byte{}, gens: map[string]int64{}}
}

func (m *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = raw
	return nil
}

func (m *memCache) Generation(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gens[key], nil
}

func (m *memCache) Invalidate(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		m.gens[k]++
	}
	return nil
}

type score struct {
	Value float64 `json:"value"`
}

func TestReadThrough(t *testing.T) {
	ctx := context.Background()
	const key = "trust-score:u1"

	t.Run("second read is served from the cache", func(t *testing.T) {
		c := newMemCache()
		loads := 0
		load := func(context.Context) (*score, error) {
			loads++
			return &score{Value: 36.5}, nil
		}

		for range 2 {
			got, err := shared.ReadThrough(ctx, c, key, time.Minute, load)
			require.NoError(t, err)
			assert.Equal(t, 36.5, got.Value)
		}
		assert.Equal(t, 1, loads)
	})

	t.Run("a load that overlaps an invalidation is not served afterwards", func(t *testing.T) {
		c := newMemCache()
		db := 36.5

		// The read observes the old row, then the writer commits and invalidates
		// before the read stores its result.
		stale := func(ctx context.Context) (*score, error) {
			v := db
			db = 36.6
			require.NoError(t, c.Invalidate(ctx, key))
			return &score{Value: v}, nil
		}
		got, err := shared.ReadThrough(ctx, c, key, time.Minute, stale)
		require.NoError(t, err)
		assert.Equal(t, 36.5, got.Value)

		fresh := func(context.Context) (*score, error) { return &score{Value: db}, nil }
		got, err = shared.ReadThrough(ctx, c, key, time.Minute, fresh)
		require.NoError(t, err)
		assert.Equal(t, 36.6, got.Value)
	})

	t.Run("load errors are returned and nothing is cached", func(t *testing.T) {
		c := newMemCache()
		_, err := shared.ReadThrough(ctx, c, key, time.Minute, func(context.Context) (*score, error) {
			return nil, assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, c.values)
	})
}
