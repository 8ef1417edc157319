package components

import (
	"classroom-reservation/internal/pkg/clock"
	"classroom-reservation/internal/pkg/config"
	"classroom-reservation/internal/usecase"
	"classroom-reservation/internal/usecase/commands"
	"classroom-reservation/internal/usecase/queries"
	"classroom-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewTrustUseCase,
		commands.NewPointUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(repo queries.ReservationReadStore, cache shared.Cache, cfg config.Config) queries.ReservationQueries {
			return queries.NewReservationQueries(repo, cache, cfg.Cache.TTL)
		},
		func(repo queries.TrustReadStore, cache shared.Cache, cfg config.Config) queries.TrustQueries {
			return queries.NewTrustQueries(repo, cache, cfg.Cache.TTL)
		},
		queries.NewPointQueries,
		queries.NewOccupancyQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
