package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot      = errors.New("invalid time slot")
	ErrInvalidRoomID        = errors.New("invalid room id")
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrIllegalTransition    = errors.New("illegal reservation status transition")
	ErrVerificationMismatch = errors.New("recognized room does not match reservation")
)

const (
	// UseAuthWindow is how long after start a check-in still counts as on time.
	UseAuthWindow = 10 * time.Minute
	// EarlyCancelWindow is the minimum lead for a cancellation to earn points.
	EarlyCancelWindow = 15 * time.Minute
)

type Reservation struct {
	id        uuid.UUID
	userID    uuid.UUID
	roomID    RoomID
	timeSlot  TimeSlot
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(userID uuid.UUID, roomID RoomID, slot TimeSlot, now time.Time) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		userID:    userID,
		roomID:    roomID,
		timeSlot:  slot,
		status:    StatusReserved,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructReservation(
	id, userID uuid.UUID,
	roomID RoomID,
	timeSlot TimeSlot,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		roomID:    roomID,
		timeSlot:  timeSlot,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) UseAuthDeadline() time.Time {
	return r.timeSlot.Start().Add(UseAuthWindow)
}

// VerifyRoom checks a recognized identifier against the reserved room.
func (r *Reservation) VerifyRoom(recognized string) error {
	if !r.roomID.Matches(recognized) {
		return ErrVerificationMismatch
	}
	return nil
}

// CheckIn moves reserved -> in_use and reports whether it happened by the use-auth deadline.
func (r *Reservation) CheckIn(now time.Time) (onTime bool, err error) {
	if err := r.transition(StatusInUse, now); err != nil {
		return false, err
	}
	return !now.After(r.UseAuthDeadline()), nil
}

func (r *Reservation) CheckOut(now time.Time) error {
	return r.transition(StatusEnded, now)
}

// Cancel moves reserved -> cancelled and reports whether the early-cancel reward applies.
func (r *Reservation) Cancel(now time.Time) (early bool, err error) {
	if err := r.transition(StatusCancelled, now); err != nil {
		return false, err
	}
	return r.timeSlot.Start().Sub(now) >= EarlyCancelWindow, nil
}

// ElapsedSinceStart is zero before the slot begins.
func (r *Reservation) ElapsedSinceStart(now time.Time) time.Duration {
	elapsed := now.Sub(r.timeSlot.Start())
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (r *Reservation) transition(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) RoomID() RoomID       { return r.roomID }
func (r *Reservation) TimeSlot() TimeSlot   { return r.timeSlot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
