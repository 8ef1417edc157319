package commands

import (
	"github.com/google/uuid"
)

// Write-side results prevent dependency on Read-side query types (CQRS separation)
type CreateReservationResult struct {
	ReservationID uuid.UUID
}

type TransitionResult struct {
	ReservationID uuid.UUID
	Status        string
	// OnTime is set for check-ins completed by the use-auth deadline.
	OnTime bool
	// TrustScore is nil when the transition has no trust side effect.
	TrustScore *float64
	// PointBalance is nil when the transition has no point side effect.
	PointBalance *int
}

type TrustScoreResult struct {
	UserID uuid.UUID
	Score  float64
}

type PointBalanceResult struct {
	UserID  uuid.UUID
	Balance int
}
