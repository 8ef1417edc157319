package readstore

import (
	"context"

	"classroom-reservation/internal/domain/trust"
	"classroom-reservation/internal/infra"
	sqlc "classroom-reservation/internal/infra/sqlc/generated"
	"classroom-reservation/internal/pkg/pgconv"
	"classroom-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type TrustViewQueries interface {
	GetTrustScore(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int32, error)
}

type TrustReadStore struct {
	queries TrustViewQueries
	db      sqlc.DBTX
}

func NewTrustReadStore(queries TrustViewQueries, db sqlc.DBTX) *TrustReadStore {
	return &TrustReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TrustReadStore) FindScore(ctx context.Context, userID uuid.UUID) (*queries.TrustScoreView, error) {
	centi, err := r.queries.GetTrustScore(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trust score not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find trust score", err)
	}

	return &queries.TrustScoreView{
		UserID: userID,
		Score:  trust.ScoreFromCenti(int(centi)).Value(),
	}, nil
}
