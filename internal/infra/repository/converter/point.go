package converter

import (
	"fmt"
	"math"

	"classroom-reservation/internal/domain/point"
	sqlc "classroom-reservation/internal/infra/sqlc/generated"
	"classroom-reservation/internal/pkg/pgconv"
)

func PointEventToInfra(ev *point.Event) sqlc.InsertPointEventParams {
	return sqlc.InsertPointEventParams{
		ID:         ev.ID(),
		UserID:     ev.UserID(),
		Delta:      int32(ev.Delta()),
		Reason:     ev.Reason().String(),
		RecordedAt: pgconv.TimeToPgtype(ev.RecordedAt()),
	}
}

// ToInt32 guards balance and score columns against overflow.
func ToInt32(v int) int32 {
	if v > math.MaxInt32 || v < math.MinInt32 {
		panic(fmt.Sprintf("value out of int32 range: %d", v))
	}
	return int32(v)
}
