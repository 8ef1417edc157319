package queries

import (
	"context"
	"time"

	"classroom-reservation/internal/domain/point"
	"classroom-reservation/internal/infra"

	"github.com/google/uuid"
)

type PointReadStore interface {
	FindBalance(ctx context.Context, userID uuid.UUID) (*PointBalanceView, error)
	FindHistoryFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*PointHistoryItem, error)
	FindHistoryKeyset(ctx context.Context, userID uuid.UUID, lastRecordedAt time.Time, lastID uuid.UUID, limit int32) ([]*PointHistoryItem, error)
}

type PointQueries interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*PointBalanceView, error)
	History(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*PointHistoryItem, *Cursor, error)
}

type pointQueriesImpl struct {
	repo PointReadStore
}

func NewPointQueries(repo PointReadStore) PointQueries {
	return &pointQueriesImpl{repo: repo}
}

// GetBalance reports the baseline for users without a stored balance; nothing is written.
func (q *pointQueriesImpl) GetBalance(ctx context.Context, userID uuid.UUID) (*PointBalanceView, error) {
	view, err := q.repo.FindBalance(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &PointBalanceView{UserID: userID, Balance: point.Baseline}, nil
		}
		return nil, err
	}
	return view, nil
}

func (q *pointQueriesImpl) History(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*PointHistoryItem, *Cursor, error) {
	limit = ClampLimit(limit)
	var rows []*PointHistoryItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindHistoryFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastRecordedAt, lastID, derr := DecodeHistoryCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.repo.FindHistoryKeyset(ctx, userID, lastRecordedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeHistoryCursor(last.RecordedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
