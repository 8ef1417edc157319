// Package occupancy estimates how likely a reserved room is to be empty.
package occupancy

import (
	"math"
	"time"
)

const DefaultMaxDuration = 180 * time.Minute

type Estimator struct {
	maxMinutes float64
}

func NewEstimator(maxDuration time.Duration) *Estimator {
	if maxDuration <= 0 {
		maxDuration = DefaultMaxDuration
	}
	return &Estimator{maxMinutes: maxDuration.Minutes()}
}

// Probability returns the empty-room probability as an integer percent in [0, 100].
// Higher trust slows the rise; elapsed time past the maximum saturates.
// NaN elapsed time counts as zero and NaN trust as no trust.
func (e *Estimator) Probability(elapsedMinutes, trust float64) int {
	if math.IsNaN(elapsedMinutes) || elapsedMinutes < 0 {
		elapsedMinutes = 0
	}
	ratio := math.Min(elapsedMinutes/e.maxMinutes, 1)
	decay := 2 - clampUnit(trust)
	p := (1 - math.Exp(-decay*ratio)) * 100
	return int(math.Round(p))
}

func (e *Estimator) MaxMinutes() float64 {
	return e.maxMinutes
}

// ConvertPointsToTrust maps a point balance onto [0, 1] with 200 points as full trust.
func ConvertPointsToTrust(points int) float64 {
	return clampUnit(float64(points) / 200)
}

// TrustFromScore maps a 0-100 trust score onto [0, 1].
func TrustFromScore(score float64) float64 {
	return clampUnit(score / 100)
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
