package queries

import (
	"context"
	"time"

	"classroom-reservation/internal/domain/user"
	"classroom-reservation/internal/infra"
	"classroom-reservation/internal/pkg/errs"
	"classroom-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.ErrReservationNotFound
	ErrIllegalState        = errs.ErrIllegalState
	ErrInvalidCursor       = errs.ErrInvalidCursor
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	UsageSummaryByUser(ctx context.Context, userID uuid.UUID) (*UsageSummary, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error)
	UsageSummary(ctx context.Context, userID uuid.UUID) (*UsageSummary, error)
}

type reservationQueriesImpl struct {
	repo     ReservationReadStore
	cache    shared.Cache
	cacheTTL time.Duration
}

func NewReservationQueries(repo ReservationReadStore, cache shared.Cache, cacheTTL time.Duration) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor user.Principal, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(view.UserID) {
		return nil, ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ReservationView, error) {
	return q.repo.FindByUser(ctx, userID)
}

func (q *reservationQueriesImpl) UsageSummary(ctx context.Context, userID uuid.UUID) (*UsageSummary, error) {
	return shared.ReadThrough(ctx, q.cache, shared.UsageSummaryCacheKey(userID), q.cacheTTL,
		func(ctx context.Context) (*UsageSummary, error) {
			return q.repo.UsageSummaryByUser(ctx, userID)
		})
}
