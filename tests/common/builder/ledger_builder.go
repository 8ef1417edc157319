//go:build unit || e2e

package builder

import (
	"time"

	"classroom-reservation/internal/domain/point"
	"classroom-reservation/internal/domain/user"
	sqlc "classroom-reservation/internal/infra/sqlc/generated"
	"classroom-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PointEventBuilder struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Reason     point.Reason
	RecordedAt time.Time
}

func NewPointEventBuilder() *PointEventBuilder {
	return &PointEventBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Reason:     point.ReasonLectureCompleted,
		RecordedAt: DefaultStart,
	}
}

func (b *PointEventBuilder) WithUserID(id uuid.UUID) *PointEventBuilder {
	b.UserID = id
	return b
}

func (b *PointEventBuilder) WithReason(r point.Reason) *PointEventBuilder {
	b.Reason = r
	return b
}

func (b *PointEventBuilder) WithRecordedAt(t time.Time) *PointEventBuilder {
	b.RecordedAt = t
	return b
}

func (b *PointEventBuilder) BuildDomain() *point.Event {
	return point.ReconstructEvent(b.ID, b.UserID, b.Reason.Delta(), b.Reason, b.RecordedAt)
}

func (b *PointEventBuilder) BuildRow() sqlc.PointEvents {
	return sqlc.PointEvents{
		ID:         b.ID,
		UserID:     b.UserID,
		Delta:      int32(b.Reason.Delta()),
		Reason:     b.Reason.String(),
		RecordedAt: pgtype.Timestamptz{Time: b.RecordedAt, Valid: true},
	}
}

func (b *PointEventBuilder) BuildHistoryItem() *queries.PointHistoryItem {
	delta := b.Reason.Delta()
	return &queries.PointHistoryItem{
		ID:          b.ID,
		Delta:       delta,
		Reason:      b.Reason.String(),
		Description: point.Describe(delta),
		RecordedAt:  b.RecordedAt,
	}
}

// Principal returns an authenticated caller; it panics on an invalid role.
func Principal(id uuid.UUID, role user.Role) user.Principal {
	p, err := user.NewPrincipal(id, role)
	if err != nil {
		panic(err)
	}
	return p
}
