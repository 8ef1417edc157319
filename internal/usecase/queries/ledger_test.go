//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"classroom-reservation/internal/domain/point"
	"classroom-reservation/internal/infra"
	"classroom-reservation/internal/pkg/errs"
	"classroom-reservation/internal/usecase/queries"
	"classroom-reservation/internal/usecase/shared"
	"classroom-reservation/tests/common/builder"
	queriesmock "classroom-reservation/tests/mock/queries"
	sharedmock "classroom-reservation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTrustQueries_GetScore(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	base := shared.TrustScoreCacheKey(userID)
	key := shared.GenerationKey(base, 0)

	t.Run("unknown user reports the baseline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTrustReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		q := queries.NewTrustQueries(store, cache, testCacheTTL)

		cache.EXPECT().Generation(ctx, base).Return(int64(0), nil)
		cache.EXPECT().Get(ctx, key, gomock.Any()).Return(false, nil)
		store.EXPECT().FindScore(ctx, userID).Return(nil, infra.WrapRepoErr("trust score not found", pgx.ErrNoRows))
		cache.EXPECT().Set(ctx, key, gomock.Any(), testCacheTTL).Return(nil)

		got, err := q.GetScore(ctx, userID)
		require.NoError(t, err)
		assert.InDelta(t, 36.5, got.Score, 1e-9)
	})

	t.Run("stored score is returned and cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTrustReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		q := queries.NewTrustQueries(store, cache, testCacheTTL)

		view := &queries.TrustScoreView{UserID: userID, Score: 42.25}
		cache.EXPECT().Generation(ctx, base).Return(int64(0), nil)
		cache.EXPECT().Get(ctx, key, gomock.Any()).Return(false, nil)
		store.EXPECT().FindScore(ctx, userID).Return(view, nil)
		cache.EXPECT().Set(ctx, key, view, testCacheTTL).Return(nil)

		got, err := q.GetScore(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("database failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTrustReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		q := queries.NewTrustQueries(store, cache, testCacheTTL)

		cache.EXPECT().Generation(ctx, base).Return(int64(0), nil)
		cache.EXPECT().Get(ctx, key, gomock.Any()).Return(false, nil)
		store.EXPECT().FindScore(ctx, userID).Return(nil, infra.WrapRepoErr("failed", assert.AnError))

		_, err := q.GetScore(ctx, userID)
		require.Error(t, err)
	})
}

func TestPointQueries_GetBalance(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockPointReadStore(ctrl)
	q := queries.NewPointQueries(store)

	store.EXPECT().FindBalance(ctx, userID).Return(nil, infra.WrapRepoErr("point balance not found", pgx.ErrNoRows))

	got, err := q.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, point.Baseline, got.Balance)
}

func TestPointQueries_History(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	items := make([]*queries.PointHistoryItem, 0, 3)
	for i := 0; i < 3; i++ {
		items = append(items, builder.NewPointEventBuilder().
			WithUserID(userID).
			WithRecordedAt(builder.DefaultStart.Add(-time.Duration(i)*time.Hour)).
			BuildHistoryItem())
	}

	t.Run("first page with more rows yields a cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPointReadStore(ctrl)
		q := queries.NewPointQueries(store)

		store.EXPECT().FindHistoryFirstPage(ctx, userID, int32(3)).Return(items, nil)

		got, next, err := q.History(ctx, userID, nil, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, next)

		at, id, err := queries.DecodeHistoryCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, items[1].ID, id)
		assert.True(t, at.Equal(items[1].RecordedAt))
	})

	t.Run("keyset page without more rows has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPointReadStore(ctrl)
		q := queries.NewPointQueries(store)

		cursor := &queries.Cursor{After: queries.EncodeHistoryCursor(items[1].RecordedAt, items[1].ID)}
		store.EXPECT().FindHistoryKeyset(ctx, userID, gomock.Any(), items[1].ID, int32(queries.DefaultListLimit+1)).
			Return(items[2:], nil)

		got, next, err := q.History(ctx, userID, cursor, 0)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("malformed cursor is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPointReadStore(ctrl)
		q := queries.NewPointQueries(store)

		_, _, err := q.History(ctx, userID, &queries.Cursor{After: "not-a-cursor"}, 10)
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
	})
}
