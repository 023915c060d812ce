package rating

import "math"

// Package rating is the single source of truth for the match point scheme.
// Both the pre-submit preview and the authoritative write path compute from
// here, so the two can never drift apart.

const (
	WinPoints  = 3.0
	DrawPoints = 1.0
	LossPoints = 0.0
)

// Odds is a pre-match probability triple relative to the team being
// evaluated: Win is the probability that this team wins.
type Odds struct {
	Win  float64
	Draw float64
	Loss float64
}

// Reversed flips the triple to the opposing team's point of view.
func (o Odds) Reversed() Odds {
	return Odds{Win: o.Loss, Draw: o.Draw, Loss: o.Win}
}

// ExpectedPoints returns the probability-weighted points implied by the odds.
// Non-finite probabilities contribute nothing instead of failing.
func ExpectedPoints(o Odds) float64 {
	return WinPoints*sanitize(o.Win) + DrawPoints*sanitize(o.Draw) + LossPoints*sanitize(o.Loss)
}

// ActualPoints maps a final scoreline to the 3/1/0 scheme for the team whose
// goals are goalsFor.
func ActualPoints(goalsFor, goalsAgainst int) float64 {
	switch {
	case goalsFor > goalsAgainst:
		return WinPoints
	case goalsFor == goalsAgainst:
		return DrawPoints
	default:
		return LossPoints
	}
}

// Change is the signed rating delta for one team in one match, rounded to two
// decimal places.
func Change(actualPoints, expectedPoints float64) float64 {
	return math.Round((actualPoints-expectedPoints)*100) / 100
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
