package queries

import (
	"context"
	"math"

	"classroom-reservation/internal/domain/occupancy"
	"classroom-reservation/internal/domain/reservation"
	"classroom-reservation/internal/domain/user"
	"classroom-reservation/internal/pkg/clock"
	"classroom-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidBasis = errs.New("invalid occupancy basis")

// Basis selects where the estimator's trust input comes from.
type Basis string

const (
	BasisTrust  Basis = "trust"
	BasisPoints Basis = "points"
)

// ParseBasis defaults to the trust score.
func ParseBasis(s string) (Basis, error) {
	switch Basis(s) {
	case "", BasisTrust:
		return BasisTrust, nil
	case BasisPoints:
		return BasisPoints, nil
	default:
		return "", ErrInvalidBasis
	}
}

// EstimateInput carries either a trust score (0-100) or a point balance.
type EstimateInput struct {
	ElapsedMinutes float64
	TrustScore     *float64
	Points         *int
}

type OccupancyQueries interface {
	Estimate(ctx context.Context, in EstimateInput) (*OccupancyEstimate, error)
	EstimateForReservation(ctx context.Context, actor user.Principal, reservationID uuid.UUID, basis Basis) (*OccupancyEstimate, error)
}

type occupancyQueriesImpl struct {
	estimator    *occupancy.Estimator
	reservations ReservationQueries
	trust        TrustQueries
	points       PointQueries
	clock        clock.Clock
}

func NewOccupancyQueries(
	estimator *occupancy.Estimator,
	reservations ReservationQueries,
	trust TrustQueries,
	points PointQueries,
	clk clock.Clock,
) OccupancyQueries {
	return &occupancyQueriesImpl{
		estimator:    estimator,
		reservations: reservations,
		trust:        trust,
		points:       points,
		clock:        clk,
	}
}

func (q *occupancyQueriesImpl) Estimate(_ context.Context, in EstimateInput) (*OccupancyEstimate, error) {
	basis := BasisTrust
	var unit float64
	switch {
	case in.Points != nil:
		basis = BasisPoints
		unit = occupancy.ConvertPointsToTrust(*in.Points)
	case in.TrustScore != nil:
		unit = occupancy.TrustFromScore(*in.TrustScore)
	default:
		return nil, ErrInvalidBasis
	}

	return &OccupancyEstimate{
		Basis:          basis,
		ElapsedMinutes: in.ElapsedMinutes,
		Trust:          unit,
		Probability:    q.estimator.Probability(in.ElapsedMinutes, unit),
	}, nil
}

func (q *occupancyQueriesImpl) EstimateForReservation(ctx context.Context, actor user.Principal, reservationID uuid.UUID, basis Basis) (*OccupancyEstimate, error) {
	view, err := q.reservations.GetByID(ctx, actor, reservationID)
	if err != nil {
		return nil, err
	}

	status, err := reservation.NewStatus(view.Status)
	if err != nil {
		return nil, err
	}
	if status != reservation.StatusReserved && status != reservation.StatusInUse {
		return nil, ErrIllegalState
	}

	elapsed := math.Floor(q.clock.Now().Sub(view.StartTime).Minutes())
	if elapsed < 0 {
		elapsed = 0
	}

	var unit float64
	switch basis {
	case BasisTrust:
		score, err := q.trust.GetScore(ctx, view.UserID)
		if err != nil {
			return nil, err
		}
		unit = occupancy.TrustFromScore(score.Score)
	case BasisPoints:
		balance, err := q.points.GetBalance(ctx, view.UserID)
		if err != nil {
			return nil, err
		}
		unit = occupancy.ConvertPointsToTrust(balance.Balance)
	default:
		return nil, ErrInvalidBasis
	}

	id := view.ID
	return &OccupancyEstimate{
		ReservationID:  &id,
		Basis:          basis,
		ElapsedMinutes: elapsed,
		Trust:          unit,
		Probability:    q.estimator.Probability(elapsed, unit),
	}, nil
}
