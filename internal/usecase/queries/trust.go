package queries

import (
	"context"
	"time"

	"classroom-reservation/internal/domain/trust"
	"classroom-reservation/internal/infra"
	"classroom-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type TrustReadStore interface {
	FindScore(ctx context.Context, userID uuid.UUID) (*TrustScoreView, error)
}

type TrustQueries interface {
	GetScore(ctx context.Context, userID uuid.UUID) (*TrustScoreView, error)
}

type trustQueriesImpl struct {
	repo     TrustReadStore
	cache    shared.Cache
	cacheTTL time.Duration
}

func NewTrustQueries(repo TrustReadStore, cache shared.Cache, cacheTTL time.Duration) TrustQueries {
	return &trustQueriesImpl{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// GetScore reports the baseline for users without a stored score; nothing is written.
func (q *trustQueriesImpl) GetScore(ctx context.Context, userID uuid.UUID) (*TrustScoreView, error) {
	return shared.ReadThrough(ctx, q.cache, shared.TrustScoreCacheKey(userID), q.cacheTTL,
		func(ctx context.Context) (*TrustScoreView, error) {
			view, err := q.repo.FindScore(ctx, userID)
			if infra.IsKind(err, infra.KindNotFound) {
				return &TrustScoreView{UserID: userID, Score: trust.Baseline().Value()}, nil
			}
			return view, err
		})
}
