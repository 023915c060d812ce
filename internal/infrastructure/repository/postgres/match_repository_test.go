package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/club-admin/internal/domain/match"
)

func validMatchFixture(id string) match.Match {
	starters := func(prefix string) []match.Appearance {
		out := make([]match.Appearance, 0, match.MinStarters)
		for i := 1; i <= match.MinStarters; i++ {
			out = append(out, match.Appearance{PlayerID: fmt.Sprintf("%s-%02d", prefix, i), Starter: true})
		}
		return out
	}

	return match.Match{
		ID:    id,
		Date:  time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC),
		Venue: "Harbor Arena",
		HomeTeam: match.TeamSheet{
			ClubID:  "club-harbor-city",
			Score:   2,
			Players: starters("hc"),
		},
		AwayTeam: match.TeamSheet{
			ClubID:  "club-riverton",
			Score:   1,
			Players: starters("rv"),
		},
		Odds: match.Odds{HomeWin: 0.5, Draw: 0.3, AwayWin: 0.2},
	}
}

// Invalid matches must be rejected before the repository ever talks to the
// database; a nil handle proves the check runs first.
func TestMatchRepository_CreateRejectsInvalidMatch(t *testing.T) {
	repo := NewMatchRepository(nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*match.Match)
		wantMsg string
	}{
		{
			name:    "future date",
			mutate:  func(m *match.Match) { m.Date = time.Now().UTC().Add(48 * time.Hour) },
			wantMsg: "future",
		},
		{
			name:    "same club both sides",
			mutate:  func(m *match.Match) { m.AwayTeam.ClubID = m.HomeTeam.ClubID },
			wantMsg: "different clubs",
		},
		{
			name:    "short team sheet",
			mutate:  func(m *match.Match) { m.HomeTeam.Players = m.HomeTeam.Players[:10] },
			wantMsg: "home(10) away(11)",
		},
		{
			name:    "odds do not sum to 1",
			mutate:  func(m *match.Match) { m.Odds = match.Odds{HomeWin: 0.5, Draw: 0.4, AwayWin: 0.3} },
			wantMsg: "sum to 1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := validMatchFixture("match-invalid")
			tc.mutate(&m)

			_, err := repo.Create(ctx, m)
			if err == nil {
				t.Fatalf("expected create to reject the match")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected %q in error, got %q", tc.wantMsg, err)
			}
		})
	}
}
