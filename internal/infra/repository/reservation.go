package repository

import (
	"context"

	"classroom-reservation/internal/domain/reservation"
	"classroom-reservation/internal/infra"
	"classroom-reservation/internal/infra/repository/converter"
	sqlc "classroom-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	LockRoomForBooking(ctx context.Context, db sqlc.DBTX, roomID string) error
	CountOverlappingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingReservationsParams) (int64, error)
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	TransitionReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionReservationStatusParams) (uuid.UUID, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) LockRoom(ctx context.Context, tx sqlc.DBTX, roomID reservation.RoomID) error {
	if err := r.queries.LockRoomForBooking(ctx, tx, roomID.String()); err != nil {
		return infra.WrapRepoErr("failed to lock room for booking", err)
	}
	return nil
}

func (r *ReservationRepository) CountOverlapping(ctx context.Context, tx sqlc.DBTX, roomID reservation.RoomID, slot reservation.TimeSlot) (int64, error) {
	n, err := r.queries.CountOverlappingReservations(ctx, tx, converter.TimeSlotToOverlapParams(roomID, slot))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToInfra(res)

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

// Transition returns a NOT_FOUND error when no row matched the expected status.
func (r *ReservationRepository) Transition(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation, from reservation.Status) error {
	_, err := r.queries.TransitionReservationStatus(ctx, tx, converter.ReservationTransitionToInfra(res, from))
	if err != nil {
		return infra.WrapRepoErr("failed to transition reservation status", err)
	}
	return nil
}
