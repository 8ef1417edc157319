package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	RoomID          string    `json:"room_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Status          string    `json:"status"`
	UseAuthDeadline time.Time `json:"use_auth_deadline"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UsageSummary aggregates a user's ended reservations
type UsageSummary struct {
	UserID           uuid.UUID `json:"user_id"`
	ReservationCount int       `json:"reservation_count"`
	TotalMinutes     int64     `json:"total_minutes"`
}

type TrustScoreView struct {
	UserID uuid.UUID `json:"user_id"`
	Score  float64   `json:"score"`
}

type PointBalanceView struct {
	UserID  uuid.UUID `json:"user_id"`
	Balance int       `json:"balance"`
}

type PointHistoryItem struct {
	ID          uuid.UUID `json:"id"`
	Delta       int       `json:"delta"`
	Reason      string    `json:"reason"`
	Description string    `json:"description"`
	RecordedAt  time.Time `json:"recorded_at"`
}

type OccupancyEstimate struct {
	ReservationID  *uuid.UUID `json:"reservation_id,omitempty"`
	Basis          Basis      `json:"basis"`
	ElapsedMinutes float64    `json:"elapsed_minutes"`
	Trust          float64    `json:"trust"`
	Probability    int        `json:"probability"`
}
