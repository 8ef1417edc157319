package request

import (
	"time"

	"classroom-reservation/internal/usecase/commands"
)

type CreateReservationRequest struct {
	RoomID    string    `json:"room_id" binding:"required,room_id"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

func (r CreateReservationRequest) ToCommand() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		RoomID:    r.RoomID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

type ReservationOccupancyQuery struct {
	Basis string `form:"basis" binding:"omitempty,oneof=trust points"`
}
