package shared

import (
	"context"
	"log/slog"
	"time"
)

// ReadThrough serves key from c, or calls load and caches the result.
// The entry is stored under the generation read before load, so a load that
// overlaps an Invalidate lands where no later read looks. Cache failures are
// logged and never fail the read.
func ReadThrough[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func(context.Context) (*T, error)) (*T, error) {
	gen, err := c.Generation(ctx, key)
	if err != nil {
		slog.Warn("cache generation read failed", "key", key, "error", err.Error())
		return load(ctx)
	}
	entryKey := GenerationKey(key, gen)

	var cached T
	hit, err := c.Get(ctx, entryKey, &cached)
	if err != nil {
		slog.Warn("cache read failed", "key", entryKey, "error", err.Error())
	}
	if hit {
		return &cached, nil
	}

	v, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.Set(ctx, entryKey, v, ttl); err != nil {
		slog.Warn("cache write failed", "key", entryKey, "error", err.Error())
	}
	return v, nil
}
