package converter

import (
	"classroom-reservation/internal/domain/reservation"
	sqlc "classroom-reservation/internal/infra/sqlc/generated"
	"classroom-reservation/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	timeSlot := res.TimeSlot()
	return sqlc.CreateReservationParams{
		ID:        res.ID(),
		UserID:    res.UserID(),
		RoomID:    res.RoomID().String(),
		StartTime: pgconv.TimeToPgtype(timeSlot.Start()),
		EndTime:   pgconv.TimeToPgtype(timeSlot.End()),
		Status:    res.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func ReservationTransitionToInfra(res *reservation.Reservation, from reservation.Status) sqlc.TransitionReservationStatusParams {
	return sqlc.TransitionReservationStatusParams{
		ToStatus:   res.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
		ID:         res.ID(),
		UserID:     res.UserID(),
		FromStatus: from.String(),
	}
}

func TimeSlotToOverlapParams(roomID reservation.RoomID, slot reservation.TimeSlot) sqlc.CountOverlappingReservationsParams {
	return sqlc.CountOverlappingReservationsParams{
		RoomID:    roomID.String(),
		StartTime: pgconv.TimeToPgtype(slot.Start()),
		EndTime:   pgconv.TimeToPgtype(slot.End()),
	}
}
