package repository

import (
	"context"

	"classroom-reservation/internal/domain/trust"
	"classroom-reservation/internal/infra"
	"classroom-reservation/internal/infra/repository/converter"
	sqlc "classroom-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type TrustWriteQueries interface {
	EnsureTrustScore(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureTrustScoreParams) error
	GetTrustScoreForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int32, error)
	UpdateTrustScore(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTrustScoreParams) error
}

type TrustRepository struct {
	queries TrustWriteQueries
}

func NewTrustRepository(queries TrustWriteQueries) *TrustRepository {
	return &TrustRepository{queries: queries}
}

func (r *TrustRepository) Ensure(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, initial trust.Score) error {
	err := r.queries.EnsureTrustScore(ctx, tx, sqlc.EnsureTrustScoreParams{
		UserID:     userID,
		ScoreCenti: converter.ToInt32(initial.Centi()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to initialize trust score", err)
	}
	return nil
}

func (r *TrustRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (trust.Score, error) {
	centi, err := r.queries.GetTrustScoreForUpdate(ctx, tx, userID)
	if err != nil {
		return trust.Score{}, infra.WrapRepoErr("failed to lock trust score", err)
	}
	return trust.ScoreFromCenti(int(centi)), nil
}

func (r *TrustRepository) Update(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, score trust.Score) error {
	err := r.queries.UpdateTrustScore(ctx, tx, sqlc.UpdateTrustScoreParams{
		ScoreCenti: converter.ToInt32(score.Centi()),
		UserID:     userID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update trust score", err)
	}
	return nil
}
