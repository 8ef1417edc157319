//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"classroom-reservation/internal/domain/user"
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

const testCacheTTL = time.Minute

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	view := builder.NewReservationBuilder().WithUserID(owner).BuildView()

	testCases := []struct {
		name      string
		actor     user.Principal
		findErr   error
		wantErr   error
		wantFound bool
	}{
		{
			name:      "success: owner reads own reservation",
			actor:     builder.Principal(owner, user.RoleStudent),
			wantFound: true,
		},
		{
			name:      "success: staff reads any reservation",
			actor:     builder.Principal(uuid.New(), user.RoleStaff),
			wantFound: true,
		},
		{
			name:    "error: other student sees not found",
			actor:   builder.Principal(uuid.New(), user.RoleStudent),
			wantErr: queries.ErrReservationNotFound,
		},
		{
			name:    "error: missing row maps to not found",
			actor:   builder.Principal(owner, user.RoleStudent),
			findErr: infra.WrapRepoErr("reservation not found", pgx.ErrNoRows),
			wantErr: queries.ErrReservationNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)
			cache := sharedmock.NewMockCache(ctrl)
			q := queries.NewReservationQueries(store, cache, testCacheTTL)

			if tc.findErr != nil {
				store.EXPECT().FindByID(ctx, view.ID).Return(nil, tc.findErr)
			} else {
				store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			}

			got, err := q.GetByID(ctx, tc.actor, view.ID)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "unexpected error: %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestReservationQueries_UsageSummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	base := shared.UsageSummaryCacheKey(userID)
	key := shared.GenerationKey(base, 0)

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		q := queries.NewReservationQueries(store, cache, testCacheTTL)

		cache.EXPECT().Generation(ctx, base).Return(int64(0), nil)
		cache.EXPECT().Get(ctx, key, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
				*dest.(*queries.UsageSummary) = queries.UsageSummary{UserID: userID, ReservationCount: 2, TotalMinutes: 150}
				return true, nil
			})

		got, err := q.UsageSummary(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(150), got.TotalMinutes)
	})

	t.Run("cache miss reads and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		q := queries.NewReservationQueries(store, cache, testCacheTTL)

		summary := &queries.UsageSummary{UserID: userID, ReservationCount: 1, TotalMinutes: 90}
		cache.EXPECT().Generation(ctx, base).Return(int64(0), nil)
		cache.EXPECT().Get(ctx, key, gomock.Any()).Return(false, nil)
		store.EXPECT().UsageSummaryByUser(ctx, userID).Return(summary, nil)
		cache.EXPECT().Set(ctx, key, summary, testCacheTTL).Return(nil)

		got, err := q.UsageSummary(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, summary, got)
	})

	t.Run("cache failures fall back to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		q := queries.NewReservationQueries(store, cache, testCacheTTL)

		summary := &queries.UsageSummary{UserID: userID}
		cache.EXPECT().Generation(ctx, base).Return(int64(0), nil)
		cache.EXPECT().Get(ctx, key, gomock.Any()).Return(false, assert.AnError)
		store.EXPECT().UsageSummaryByUser(ctx, userID).Return(summary, nil)
		cache.EXPECT().Set(ctx, key, summary, testCacheTTL).Return(assert.AnError)

		got, err := q.UsageSummary(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.ReservationCount)
	})

	t.Run("unreadable generation bypasses the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		q := queries.NewReservationQueries(store, cache, testCacheTTL)

		summary := &queries.UsageSummary{UserID: userID, ReservationCount: 3}
		cache.EXPECT().Generation(ctx, base).Return(int64(0), assert.AnError)
		store.EXPECT().UsageSummaryByUser(ctx, userID).Return(summary, nil)

		got, err := q.UsageSummary(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, summary, got)
	})

	t.Run("entries follow the current generation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		cache := sharedmock.NewMockCache(ctrl)
		q := queries.NewReservationQueries(store, cache, testCacheTTL)

		summary := &queries.UsageSummary{UserID: userID, ReservationCount: 4}
		current := shared.GenerationKey(base, 7)
		cache.EXPECT().Generation(ctx, base).Return(int64(7), nil)
		cache.EXPECT().Get(ctx, current, gomock.Any()).Return(false, nil)
		store.EXPECT().UsageSummaryByUser(ctx, userID).Return(summary, nil)
		cache.EXPECT().Set(ctx, current, summary, testCacheTTL).Return(nil)

		got, err := q.UsageSummary(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, summary, got)
	})
}
