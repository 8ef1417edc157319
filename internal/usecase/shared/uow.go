package shared

import (
	"context"
	"time"

	"classroom-reservation/internal/domain/point"
	"classroom-reservation/internal/domain/reservation"
	"classroom-reservation/internal/domain/trust"
	sqlc "classroom-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Trust() TrustRepository
	Points() PointRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RoomID    string
	StartTime time.Time
	EndTime   time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReservationRepository interface {
	// LockRoom serializes bookings of one room until the transaction ends.
	LockRoom(ctx context.Context, tx sqlc.DBTX, roomID reservation.RoomID) error
	CountOverlapping(ctx context.Context, tx sqlc.DBTX, roomID reservation.RoomID, slot reservation.TimeSlot) (int64, error)
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// Transition persists res's current status only if the stored status still equals from.
	Transition(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation, from reservation.Status) error
}

type TrustRepository interface {
	Ensure(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, initial trust.Score) error
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (trust.Score, error)
	Update(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, score trust.Score) error
}

type PointRepository interface {
	// Ensure reports whether the balance row was created by this call.
	Ensure(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, initial point.Balance) (bool, error)
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (point.Balance, error)
	Update(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, balance point.Balance) error
	AppendEvent(ctx context.Context, tx sqlc.DBTX, ev *point.Event) error
}
