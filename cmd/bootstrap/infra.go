package bootstrap

import (
	"context"
	"log/slog"

	"classroom-reservation/internal/domain/occupancy"
	"classroom-reservation/internal/infra/cache"
	"classroom-reservation/internal/infra/storage"
	"classroom-reservation/internal/infra/verifier"
	"classroom-reservation/internal/pkg/config"
	"classroom-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewCache,
		NewImageArchive,
		fx.Annotate(
			NewRoomVerifier,
			fx.As(new(shared.RoomVerifier)),
		),
		NewEstimator,
	),
)

func NewCache(lc fx.Lifecycle, cfg config.Config) shared.Cache {
	if !cfg.Cache.Enabled {
		slog.Info("Redis cache disabled, using no-op cache")
		return cache.NewNoopCache()
	}

	client := cache.NewRedisClient(cfg.Cache)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				// Reads fall through to the database while Redis is unreachable.
				slog.Warn("Redis ping failed", "addr", cfg.Cache.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewRedisCache(client, cfg.Cache.KeyPrefix)
}

func NewImageArchive(cfg config.Config) (shared.ImageArchive, error) {
	if !cfg.Storage.Enabled {
		slog.Info("Object storage disabled, check-in photos are not archived")
		return storage.NewNoopArchive(), nil
	}

	client, err := storage.NewS3Client(context.Background(), cfg.Storage)
	if err != nil {
		return nil, err
	}
	return storage.NewS3Archive(client, cfg.Storage.Bucket), nil
}

func NewRoomVerifier(cfg config.Config) *verifier.HTTPVerifier {
	return verifier.NewHTTPVerifier(cfg.Verifier)
}

func NewEstimator(cfg config.Config) *occupancy.Estimator {
	return occupancy.NewEstimator(cfg.Occupancy.MaxDuration)
}
