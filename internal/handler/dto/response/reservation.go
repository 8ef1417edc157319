package response

import (
	"time"

	"classroom-reservation/internal/domain/reservation"
	"classroom-reservation/internal/usecase/commands"
	"classroom-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	RoomID          string    `json:"roomId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Status          string    `json:"status"`
	UseAuthDeadline time.Time `json:"useAuthDeadline"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type TransitionResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Status        string    `json:"status"`
	OnTime        bool      `json:"onTime"`
	TrustScore    *float64  `json:"trustScore,omitempty"`
	PointBalance  *int      `json:"pointBalance,omitempty"`
}

// CreatedReservationResponse is returned when the stored reservation could not be read back.
type CreatedReservationResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type UsageSummaryResponse struct {
	UserID           uuid.UUID `json:"userId"`
	ReservationCount int       `json:"reservationCount"`
	TotalMinutes     int64     `json:"totalMinutes"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return mustCopy[ReservationResponse](v)
}

func FromReservationList(views []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(views))
	for i, v := range views {
		res[i] = FromReservationView(v)
	}
	return res
}

func FromCreateResult(r *commands.CreateReservationResult) *CreatedReservationResponse {
	return &CreatedReservationResponse{ID: r.ReservationID, Status: string(reservation.StatusReserved)}
}

func FromTransitionResult(r *commands.TransitionResult) *TransitionResponse {
	return mustCopy[TransitionResponse](r)
}

func FromUsageSummary(s *queries.UsageSummary) *UsageSummaryResponse {
	return mustCopy[UsageSummaryResponse](s)
}
