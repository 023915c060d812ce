package rating

import (
	"math"
	"testing"
)

func TestExpectedPoints_CertainOutcomes(t *testing.T) {
	cases := []struct {
		name string
		odds Odds
		want float64
	}{
		{name: "certain win", odds: Odds{Win: 1}, want: 3},
		{name: "certain draw", odds: Odds{Draw: 1}, want: 1},
		{name: "certain loss", odds: Odds{Loss: 1}, want: 0},
		{name: "mixed", odds: Odds{Win: 0.5, Draw: 0.3, Loss: 0.2}, want: 1.8},
		{name: "empty triple degrades to zero", odds: Odds{}, want: 0},
		{name: "nan degrades to zero", odds: Odds{Win: math.NaN(), Draw: 0.3}, want: 0.3},
		{name: "inf degrades to zero", odds: Odds{Win: math.Inf(1), Draw: 1}, want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExpectedPoints(tc.odds)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected points = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestExpectedPoints_BoundedForValidTriples(t *testing.T) {
	for w := 0; w <= 10; w++ {
		for d := 0; d+w <= 10; d++ {
			odds := Odds{
				Win:  float64(w) / 10,
				Draw: float64(d) / 10,
				Loss: float64(10-w-d) / 10,
			}
			got := ExpectedPoints(odds)
			if got < 0 || got > 3 {
				t.Fatalf("expected points %v out of [0,3] for %+v", got, odds)
			}
		}
	}
}

func TestExpectedPoints_ReversedIsAwayView(t *testing.T) {
	home := Odds{Win: 0.5, Draw: 0.3, Loss: 0.2}
	away := home.Reversed()

	if away.Win != home.Loss || away.Loss != home.Win || away.Draw != home.Draw {
		t.Fatalf("reversed odds mismatch: %+v", away)
	}
	if got := ExpectedPoints(away); math.Abs(got-0.9) > 1e-9 {
		t.Fatalf("away expected points = %v, want 0.9", got)
	}
}

func TestActualPoints(t *testing.T) {
	cases := []struct {
		goalsFor, goalsAgainst int
		want                   float64
	}{
		{3, 1, 3},
		{1, 1, 1},
		{0, 2, 0},
		{0, 0, 1},
	}

	for _, tc := range cases {
		if got := ActualPoints(tc.goalsFor, tc.goalsAgainst); got != tc.want {
			t.Fatalf("ActualPoints(%d,%d) = %v, want %v", tc.goalsFor, tc.goalsAgainst, got, tc.want)
		}
	}
}

func TestChange_RoundsToTwoDecimals(t *testing.T) {
	cases := []struct {
		actual, expected, want float64
	}{
		{3, 1.8, 1.2},
		{0, 0.9, -0.9},
		{1, 1, 0},
		{3, 1.333333, 1.67},
		{0, 2.005, -2},
	}

	for _, tc := range cases {
		if got := Change(tc.actual, tc.expected); got != tc.want {
			t.Fatalf("Change(%v,%v) = %v, want %v", tc.actual, tc.expected, got, tc.want)
		}
	}
}

func TestChange_SymmetricDraw(t *testing.T) {
	// A drawn match with symmetric odds must move both teams identically.
	odds := Odds{Win: 0.35, Draw: 0.3, Loss: 0.35}

	home := Change(ActualPoints(1, 1), ExpectedPoints(odds))
	away := Change(ActualPoints(1, 1), ExpectedPoints(odds.Reversed()))
	if home != away {
		t.Fatalf("home delta %v != away delta %v", home, away)
	}
}
