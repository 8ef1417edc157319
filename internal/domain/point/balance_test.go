//go:build unit

package point_test

import (
	"testing"
	"time"

	"classroom-reservation/internal/domain/point"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance(t *testing.T) {
	t.Run("earn", func(t *testing.T) {
		b := point.NewBalance(point.Baseline)
		assert.Equal(t, 105, b.Apply(point.ReasonLectureCompleted).Value())
		assert.Equal(t, 105, b.Apply(point.ReasonCancelBeforeStart).Value())
		assert.Equal(t, 110, b.Apply(point.ReasonReportMisuse).Value())
	})

	t.Run("deduct", func(t *testing.T) {
		b := point.NewBalance(point.Baseline)
		assert.Equal(t, 85, b.Apply(point.ReasonNoCheckout).Value())
		assert.Equal(t, 90, b.Apply(point.ReasonNoAuthInTime).Value())
	})

	t.Run("floored at zero", func(t *testing.T) {
		assert.Equal(t, 0, point.NewBalance(10).Apply(point.ReasonNoCheckout).Value())
		assert.Equal(t, 0, point.NewBalance(-3).Value())
	})

	t.Run("no upper cap", func(t *testing.T) {
		b := point.NewBalance(point.Baseline)
		for range 100 {
			b = b.Apply(point.ReasonReportMisuse)
		}
		assert.Equal(t, 1100, b.Value())
	})
}

func TestParseReason(t *testing.T) {
	t.Run("earn table", func(t *testing.T) {
		for _, s := range []string{"lecture_completed", "cancel_before_15min", "report_misuse"} {
			_, err := point.ParseEarnReason(s)
			require.NoError(t, err, s)
		}
		_, err := point.ParseEarnReason("no_checkout")
		assert.ErrorIs(t, err, point.ErrUnknownReason)
		_, err = point.ParseEarnReason("first_use_bonus")
		assert.ErrorIs(t, err, point.ErrUnknownReason)
	})

	t.Run("deduct table", func(t *testing.T) {
		for _, s := range []string{"no_checkout", "no_auth_in_time"} {
			_, err := point.ParseDeductReason(s)
			require.NoError(t, err, s)
		}
		_, err := point.ParseDeductReason("lecture_completed")
		assert.ErrorIs(t, err, point.ErrUnknownReason)
	})

	t.Run("signed deltas", func(t *testing.T) {
		assert.Equal(t, 100, point.ReasonFirstUseBonus.Delta())
		assert.Equal(t, 5, point.ReasonLectureCompleted.Delta())
		assert.Equal(t, -15, point.ReasonNoCheckout.Delta())
		assert.Equal(t, -10, point.ReasonNoAuthInTime.Delta())
	})
}

func TestEvent(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2030, 4, 1, 10, 0, 0, 0, time.UTC)

	first := point.NewEvent(userID, point.ReasonFirstUseBonus, now)
	second := point.NewEvent(userID, point.ReasonNoCheckout, now)

	assert.Equal(t, 100, first.Delta())
	assert.Equal(t, -15, second.Delta())
	assert.Equal(t, now, second.RecordedAt())
	assert.Less(t, first.ID().String(), second.ID().String(), "ids must preserve insertion order")
}

func TestDescribe(t *testing.T) {
	cases := map[int]string{
		100: "first use bonus",
		10:  "misuse report accepted",
		5:   "normal completion/cancellation",
		-15: "no checkout after deadline",
		-10: "other",
		7:   "other",
	}
	for delta, want := range cases {
		assert.Equal(t, want, point.Describe(delta), "delta %d", delta)
	}
}
