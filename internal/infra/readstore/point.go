package readstore

import (
	"context"
	"time"

	"classroom-reservation/internal/domain/point"
	"classroom-reservation/internal/infra"
	sqlc "classroom-reservation/internal/infra/sqlc/generated"
	"classroom-reservation/internal/pkg/pgconv"
	"classroom-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type PointViewQueries interface {
	GetPointBalance(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int32, error)
	ListPointEventsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPointEventsFirstPageParams) ([]sqlc.PointEvents, error)
	ListPointEventsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPointEventsKeysetParams) ([]sqlc.PointEvents, error)
}

type PointReadStore struct {
	queries PointViewQueries
	db      sqlc.DBTX
}

func NewPointReadStore(queries PointViewQueries, db sqlc.DBTX) *PointReadStore {
	return &PointReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PointReadStore) FindBalance(ctx context.Context, userID uuid.UUID) (*queries.PointBalanceView, error) {
	balance, err := r.queries.GetPointBalance(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("point balance not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find point balance", err)
	}

	return &queries.PointBalanceView{UserID: userID, Balance: int(balance)}, nil
}

func (r *PointReadStore) FindHistoryFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.PointHistoryItem, error) {
	params := sqlc.ListPointEventsFirstPageParams{
		UserID:   userID,
		RowLimit: limit,
	}

	rows, err := r.queries.ListPointEventsFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find point history first page", err)
	}
	return toPointHistoryItems(rows), nil
}

func (r *PointReadStore) FindHistoryKeyset(ctx context.Context, userID uuid.UUID, lastRecordedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PointHistoryItem, error) {
	params := sqlc.ListPointEventsKeysetParams{
		UserID:     userID,
		RecordedAt: pgconv.TimeToPgtype(lastRecordedAt),
		ID:         lastID,
		RowLimit:   limit,
	}

	rows, err := r.queries.ListPointEventsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find point history keyset", err)
	}
	return toPointHistoryItems(rows), nil
}

func toPointHistoryItems(rows []sqlc.PointEvents) []*queries.PointHistoryItem {
	result := make([]*queries.PointHistoryItem, len(rows))
	for i, row := range rows {
		delta := int(row.Delta)
		result[i] = &queries.PointHistoryItem{
			ID:          row.ID,
			Delta:       delta,
			Reason:      row.Reason,
			Description: point.Describe(delta),
			RecordedAt:  pgconv.TimeFromPgtype(row.RecordedAt),
		}
	}
	return result
}
