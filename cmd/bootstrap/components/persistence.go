package components

import (
	"classroom-reservation/internal/infra/readstore"
	sqlc "classroom-reservation/internal/infra/sqlc/generated"
	"classroom-reservation/internal/infra/uow"
	"classroom-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Trust
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TrustViewQueries)),
		),
		fx.Annotate(
			readstore.NewTrustReadStore,
			fx.As(new(queries.TrustReadStore)),
		),
		// Point
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PointViewQueries)),
		),
		fx.Annotate(
			readstore.NewPointReadStore,
			fx.As(new(queries.PointReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
