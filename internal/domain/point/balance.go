package point

import (
	"time"

	"github.com/google/uuid"
)

const Baseline = 100

type Balance struct {
	value int
}

func NewBalance(v int) Balance {
	if v < 0 {
		v = 0
	}
	return Balance{value: v}
}

// Apply adds the reason's delta, flooring at zero.
func (b Balance) Apply(r Reason) Balance {
	return NewBalance(b.value + r.Delta())
}

func (b Balance) Value() int {
	return b.value
}

type Event struct {
	id         uuid.UUID
	userID     uuid.UUID
	delta      int
	reason     Reason
	recordedAt time.Time
}

// NewEvent assigns a time-ordered id so that events recorded in the same instant keep insertion order.
func NewEvent(userID uuid.UUID, reason Reason, now time.Time) *Event {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &Event{
		id:         id,
		userID:     userID,
		delta:      reason.Delta(),
		reason:     reason,
		recordedAt: now,
	}
}

func ReconstructEvent(id, userID uuid.UUID, delta int, reason Reason, recordedAt time.Time) *Event {
	return &Event{
		id:         id,
		userID:     userID,
		delta:      delta,
		reason:     reason,
		recordedAt: recordedAt,
	}
}

func (e *Event) ID() uuid.UUID         { return e.id }
func (e *Event) UserID() uuid.UUID     { return e.userID }
func (e *Event) Delta() int            { return e.delta }
func (e *Event) Reason() Reason        { return e.reason }
func (e *Event) RecordedAt() time.Time { return e.recordedAt }

// Describe labels a history entry by its recorded magnitude.
func Describe(delta int) string {
	switch delta {
	case 100:
		return "first use bonus"
	case 10:
		return "misuse report accepted"
	case 5:
		return "normal completion/cancellation"
	case -15:
		return "no checkout after deadline"
	default:
		return "other"
	}
}
