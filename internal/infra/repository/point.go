package repository

import (
	"context"

	"classroom-reservation/internal/domain/point"
	"classroom-reservation/internal/infra"
	"classroom-reservation/internal/infra/repository/converter"
	sqlc "classroom-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PointWriteQueries interface {
	EnsurePointBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsurePointBalanceParams) (int64, error)
	GetPointBalanceForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int32, error)
	UpdatePointBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePointBalanceParams) error
	InsertPointEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPointEventParams) error
}

type PointRepository struct {
	queries PointWriteQueries
}

func NewPointRepository(queries PointWriteQueries) *PointRepository {
	return &PointRepository{queries: queries}
}

func (r *PointRepository) Ensure(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, initial point.Balance) (bool, error) {
	inserted, err := r.queries.EnsurePointBalance(ctx, tx, sqlc.EnsurePointBalanceParams{
		UserID:  userID,
		Balance: converter.ToInt32(initial.Value()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to initialize point balance", err)
	}
	return inserted > 0, nil
}

func (r *PointRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (point.Balance, error) {
	balance, err := r.queries.GetPointBalanceForUpdate(ctx, tx, userID)
	if err != nil {
		return point.Balance{}, infra.WrapRepoErr("failed to lock point balance", err)
	}
	return point.NewBalance(int(balance)), nil
}

func (r *PointRepository) Update(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, balance point.Balance) error {
	err := r.queries.UpdatePointBalance(ctx, tx, sqlc.UpdatePointBalanceParams{
		Balance: converter.ToInt32(balance.Value()),
		UserID:  userID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update point balance", err)
	}
	return nil
}

func (r *PointRepository) AppendEvent(ctx context.Context, tx sqlc.DBTX, ev *point.Event) error {
	if err := r.queries.InsertPointEvent(ctx, tx, converter.PointEventToInfra(ev)); err != nil {
		return infra.WrapRepoErr("failed to append point event", err)
	}
	return nil
}
