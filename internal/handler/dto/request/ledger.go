package request

import (
	"classroom-reservation/internal/usecase/queries"
)

type UpdateTrustRequest struct {
	Event string `json:"event" binding:"required,trust_event"`
}

type PointReasonRequest struct {
	Reason string `json:"reason" binding:"required,point_reason"`
}

type PointHistoryQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
	After string `form:"after"`
}

func (q PointHistoryQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

// OccupancyEstimateQuery takes either a 0-100 trust score or a point balance.
// Elapsed time is whole minutes.
type OccupancyEstimateQuery struct {
	ElapsedMinutes *int     `form:"elapsed_minutes" binding:"required,min=0"`
	Trust          *float64 `form:"trust" binding:"omitempty,min=0,max=100"`
	Points         *int     `form:"points"`
}

func (q OccupancyEstimateQuery) ToInput() queries.EstimateInput {
	return queries.EstimateInput{
		ElapsedMinutes: float64(*q.ElapsedMinutes),
		TrustScore:     q.Trust,
		Points:         q.Points,
	}
}
