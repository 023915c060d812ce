package match

import (
	"fmt"
	"math"
	"time"
)

const (
	// MinStarters is the minimum number of starting players per team sheet.
	MinStarters = 11
	// OddsSumTolerance allows for floating point noise when checking that the
	// probability triple sums to 1.
	OddsSumTolerance = 0.01
)

// Odds is the pre-match probability triple as submitted, always expressed
// from the home team's point of view.
type Odds struct {
	HomeWin float64
	Draw    float64
	AwayWin float64
}

func (o Odds) Sum() float64 {
	return o.HomeWin + o.Draw + o.AwayWin
}

// Appearance links one player to a team sheet.
type Appearance struct {
	PlayerID string
	Starter  bool
}

// TeamSheet is one side of a fixture. RatingChange is filled in by the rating
// engine when the match is scored and stored alongside the match for display.
type TeamSheet struct {
	ClubID       string
	Score        int
	Players      []Appearance
	RatingChange float64
}

func (t TeamSheet) StarterCount() int {
	count := 0
	for _, p := range t.Players {
		if p.Starter {
			count++
		}
	}
	return count
}

func (t TeamSheet) StarterIDs() []string {
	out := make([]string, 0, len(t.Players))
	for _, p := range t.Players {
		if p.Starter {
			out = append(out, p.PlayerID)
		}
	}
	return out
}

// Match is one played fixture. Matches are immutable once created; rating
// history entries reference them by ID.
type Match struct {
	ID        string
	Date      time.Time
	Venue     string
	HomeTeam  TeamSheet
	AwayTeam  TeamSheet
	Odds      Odds
	CreatedAt time.Time
}

// Validate enforces the match invariants. Repositories call it again before
// persisting so a bad record cannot reach the store through any path.
func (m Match) Validate(now time.Time) error {
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if m.Date.After(now) {
		return fmt.Errorf("match date must not be in the future: %s", m.Date.UTC().Format(time.RFC3339))
	}
	if m.Venue == "" {
		return fmt.Errorf("match venue is required")
	}
	if m.HomeTeam.ClubID == "" || m.AwayTeam.ClubID == "" {
		return fmt.Errorf("both teams must reference a club")
	}
	if m.HomeTeam.ClubID == m.AwayTeam.ClubID {
		return fmt.Errorf("home team and away team must be different clubs: %s", m.HomeTeam.ClubID)
	}
	if m.HomeTeam.Score < 0 || m.AwayTeam.Score < 0 {
		return fmt.Errorf("scores must not be negative: home(%d) away(%d)", m.HomeTeam.Score, m.AwayTeam.Score)
	}
	if err := m.Odds.Validate(); err != nil {
		return err
	}

	homeStarters := m.HomeTeam.StarterCount()
	awayStarters := m.AwayTeam.StarterCount()
	if homeStarters < MinStarters || awayStarters < MinStarters {
		return fmt.Errorf("each team must have at least %d starters: home(%d) away(%d)",
			MinStarters, homeStarters, awayStarters)
	}

	return nil
}

// Validate checks that each probability is in [0,1] and the triple sums to 1
// within OddsSumTolerance.
func (o Odds) Validate() error {
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"homeWin", o.HomeWin},
		{"draw", o.Draw},
		{"awayWin", o.AwayWin},
	} {
		if math.IsNaN(p.value) || p.value < 0 || p.value > 1 {
			return fmt.Errorf("odds.%s must be a probability in [0,1]: got %v", p.name, p.value)
		}
	}

	if sum := o.Sum(); math.Abs(sum-1) >= OddsSumTolerance {
		return fmt.Errorf("match odds probabilities must sum to 1: got %.2f", sum)
	}

	return nil
}
