package response

import (
	"time"

	"classroom-reservation/internal/usecase/commands"
	"classroom-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type TrustScoreResponse struct {
	UserID uuid.UUID `json:"userId"`
	Score  float64   `json:"score"`
}

type PointBalanceResponse struct {
	UserID  uuid.UUID `json:"userId"`
	Balance int       `json:"balance"`
}

type PointHistoryItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Delta       int       `json:"delta"`
	Reason      string    `json:"reason"`
	Description string    `json:"description"`
	RecordedAt  time.Time `json:"recordedAt"`
}

type PointHistoryResponse struct {
	Items      []*PointHistoryItemResponse `json:"items"`
	NextCursor string                      `json:"nextCursor,omitempty"`
}

type OccupancyEstimateResponse struct {
	ReservationID  *uuid.UUID `json:"reservationId,omitempty"`
	Basis          string     `json:"basis"`
	ElapsedMinutes float64    `json:"elapsedMinutes"`
	Trust          float64    `json:"trust"`
	Probability    int        `json:"probability"`
}

func FromTrustScoreView(v *queries.TrustScoreView) *TrustScoreResponse {
	return mustCopy[TrustScoreResponse](v)
}

func FromTrustScoreResult(r *commands.TrustScoreResult) *TrustScoreResponse {
	return mustCopy[TrustScoreResponse](r)
}

func FromPointBalanceView(v *queries.PointBalanceView) *PointBalanceResponse {
	return mustCopy[PointBalanceResponse](v)
}

func FromPointBalanceResult(r *commands.PointBalanceResult) *PointBalanceResponse {
	return mustCopy[PointBalanceResponse](r)
}

func FromPointHistory(items []*queries.PointHistoryItem, next *queries.Cursor) *PointHistoryResponse {
	res := &PointHistoryResponse{Items: make([]*PointHistoryItemResponse, len(items))}
	for i, it := range items {
		res.Items[i] = mustCopy[PointHistoryItemResponse](it)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

func FromOccupancyEstimate(e *queries.OccupancyEstimate) *OccupancyEstimateResponse {
	res := mustCopy[OccupancyEstimateResponse](e)
	res.Basis = string(e.Basis)
	return res
}
