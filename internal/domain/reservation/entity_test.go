//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"classroom-reservation/internal/domain/reservation"
	"classroom-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitionCase struct {
	name    string
	status  reservation.Status
	act     func(*reservation.Reservation, time.Time) error
	want    reservation.Status
	wantErr error
}

func checkIn(r *reservation.Reservation, now time.Time) error {
	_, err := r.CheckIn(now)
	return err
}

func checkOut(r *reservation.Reservation, now time.Time) error {
	return r.CheckOut(now)
}

func cancel(r *reservation.Reservation, now time.Time) error {
	_, err := r.Cancel(now)
	return err
}

func TestReservation(t *testing.T) {
	t.Run("new reservation starts reserved", func(t *testing.T) {
		room, err := reservation.NewRoomID("101")
		require.NoError(t, err)
		start := time.Date(2030, 4, 1, 10, 0, 0, 0, time.UTC)
		slot, err := reservation.NewTimeSlot(start, start.Add(time.Hour))
		require.NoError(t, err)

		r := reservation.NewReservation(uuid.New(), room, slot, start.Add(-time.Hour))

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, reservation.StatusReserved, r.Status())
		assert.Equal(t, start.Add(10*time.Minute), r.UseAuthDeadline())
	})

	t.Run("transitions", func(t *testing.T) {
		now := time.Date(2030, 4, 1, 10, 5, 0, 0, time.UTC)
		cases := []transitionCase{
			{name: "check-in from reserved", status: reservation.StatusReserved, act: checkIn, want: reservation.StatusInUse},
			{name: "cancel from reserved", status: reservation.StatusReserved, act: cancel, want: reservation.StatusCancelled},
			{name: "check-out from in_use", status: reservation.StatusInUse, act: checkOut, want: reservation.StatusEnded},
			{name: "check-out from reserved", status: reservation.StatusReserved, act: checkOut, wantErr: reservation.ErrIllegalTransition},
			{name: "check-in from in_use", status: reservation.StatusInUse, act: checkIn, wantErr: reservation.ErrIllegalTransition},
			{name: "cancel from in_use", status: reservation.StatusInUse, act: cancel, wantErr: reservation.ErrIllegalTransition},
			{name: "check-in from ended", status: reservation.StatusEnded, act: checkIn, wantErr: reservation.ErrIllegalTransition},
			{name: "cancel from cancelled", status: reservation.StatusCancelled, act: cancel, wantErr: reservation.ErrIllegalTransition},
			{name: "check-out from cancelled", status: reservation.StatusCancelled, act: checkOut, wantErr: reservation.ErrIllegalTransition},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				r, err := builder.NewReservationBuilder().WithStatus(tc.status).BuildDomain()
				require.NoError(t, err)

				err = tc.act(r, now)
				if tc.wantErr != nil {
					assert.ErrorIs(t, err, tc.wantErr)
					assert.Equal(t, tc.status, r.Status(), "status must not change on failure")
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tc.want, r.Status())
				assert.Equal(t, now, r.UpdatedAt())
			})
		}
	})

	t.Run("check-in timeliness", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		cases := []struct {
			name   string
			offset time.Duration
			onTime bool
		}{
			{name: "before start", offset: -5 * time.Minute, onTime: true},
			{name: "exactly at deadline", offset: 10 * time.Minute, onTime: true},
			{name: "after deadline", offset: 10*time.Minute + time.Second, onTime: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				r, err := b.BuildDomain()
				require.NoError(t, err)
				onTime, err := r.CheckIn(b.StartTime.Add(tc.offset))
				require.NoError(t, err)
				assert.Equal(t, tc.onTime, onTime)
			})
		}
	})

	t.Run("early cancellation", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		cases := []struct {
			name   string
			before time.Duration
			early  bool
		}{
			{name: "an hour ahead", before: time.Hour, early: true},
			{name: "exactly fifteen minutes ahead", before: 15 * time.Minute, early: true},
			{name: "fourteen minutes ahead", before: 14 * time.Minute, early: false},
			{name: "after start", before: -time.Minute, early: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				r, err := b.BuildDomain()
				require.NoError(t, err)
				early, err := r.Cancel(b.StartTime.Add(-tc.before))
				require.NoError(t, err)
				assert.Equal(t, tc.early, early)
			})
		}
	})

	t.Run("room verification", func(t *testing.T) {
		r, err := builder.NewReservationBuilder().WithRoomID("101").BuildDomain()
		require.NoError(t, err)

		assert.NoError(t, r.VerifyRoom("101"))
		assert.NoError(t, r.VerifyRoom(" 101\n"))
		assert.ErrorIs(t, r.VerifyRoom("102"), reservation.ErrVerificationMismatch)
		assert.ErrorIs(t, r.VerifyRoom(""), reservation.ErrVerificationMismatch)
	})

	t.Run("elapsed since start", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		r, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, time.Duration(0), r.ElapsedSinceStart(b.StartTime.Add(-time.Hour)))
		assert.Equal(t, 42*time.Minute, r.ElapsedSinceStart(b.StartTime.Add(42*time.Minute)))
	})
}
