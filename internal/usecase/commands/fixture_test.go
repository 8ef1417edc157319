//go:build unit

package commands_test

import (
	"context"
	"testing"

	"classroom-reservation/internal/pkg/clock"
	"classroom-reservation/internal/usecase/shared"
	"classroom-reservation/tests/common/builder"
	sharedmock "classroom-reservation/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"
)

// uowFixture wires a unit of work whose Within runs the callback once against mocked repositories.
type uowFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	reservations *sharedmock.MockReservationRepository
	trust        *sharedmock.MockTrustRepository
	points       *sharedmock.MockPointRepository
	verifier     *sharedmock.MockRoomVerifier
	archive      *sharedmock.MockImageArchive
	cache        *sharedmock.MockCache
	clock        *clock.MockClock
	db           *fakeDBTX
}

func newUoWFixture(t *testing.T) *uowFixture {
	ctrl := gomock.NewController(t)
	f := &uowFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		trust:        sharedmock.NewMockTrustRepository(ctrl),
		points:       sharedmock.NewMockPointRepository(ctrl),
		verifier:     sharedmock.NewMockRoomVerifier(ctrl),
		archive:      sharedmock.NewMockImageArchive(ctrl),
		cache:        sharedmock.NewMockCache(ctrl),
		clock:        clock.NewMockClock(builder.DefaultStart),
		db:           &fakeDBTX{},
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().DB().Return(f.db).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Trust().Return(f.trust).AnyTimes()
	f.tx.EXPECT().Points().Return(f.points).AnyTimes()
	return f
}

// fakeDBTX is only passed through to mocked repositories.
type fakeDBTX struct{}

func (f *fakeDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	panic("fakeDBTX.Exec was called unexpectedly")
}

func (f *fakeDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("fakeDBTX.Query was called unexpectedly")
}

func (f *fakeDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("fakeDBTX.QueryRow was called unexpectedly")
}
