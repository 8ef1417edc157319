//go:build unit || e2e

package builder

import (
	"time"

	"classroom-reservation/internal/domain/reservation"
	reqdto "classroom-reservation/internal/handler/dto/request"
	sqlc "classroom-reservation/internal/infra/sqlc/generated"
	"classroom-reservation/internal/usecase/queries"
	"classroom-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// DefaultStart is far enough ahead that builder reservations never start in the past.
var DefaultStart = time.Date(2030, 4, 1, 10, 0, 0, 0, time.UTC)

type ReservationBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RoomID    string
	StartTime time.Time
	EndTime   time.Time
	Status    reservation.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	created := DefaultStart.Add(-24 * time.Hour)
	return &ReservationBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		RoomID:    "101",
		StartTime: DefaultStart,
		EndTime:   DefaultStart.Add(90 * time.Minute),
		Status:    reservation.StatusReserved,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithRoomID(roomID string) *ReservationBuilder {
	b.RoomID = roomID
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithTimes(start, end time.Time) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	roomID, err := reservation.NewRoomID(b.RoomID)
	if err != nil {
		return nil, err
	}
	slot, err := reservation.NewTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(b.ID, b.UserID, roomID, slot, b.Status, b.CreatedAt, b.UpdatedAt), nil
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:    b.RoomID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              b.ID,
		UserID:          b.UserID,
		RoomID:          b.RoomID,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		Status:          b.Status.String(),
		UseAuthDeadline: b.StartTime.Add(reservation.UseAuthWindow),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status.String(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildRow() sqlc.ListReservationsByUserRow {
	return sqlc.ListReservationsByUserRow{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		StartTime: pgtype.Timestamptz{Time: b.StartTime, Valid: true},
		EndTime:   pgtype.Timestamptz{Time: b.EndTime, Valid: true},
		Status:    b.Status.String(),
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *ReservationBuilder) BuildByIDRow() sqlc.GetReservationByIDRow {
	return sqlc.GetReservationByIDRow(b.BuildRow())
}
