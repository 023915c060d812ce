package match

import (
	"strings"
	"testing"
	"time"
)

func validMatch(now time.Time) Match {
	return Match{
		Date:     now.Add(-24 * time.Hour),
		Venue:    "Old Trafford",
		HomeTeam: TeamSheet{ClubID: "club-home", Score: 2, Players: sheet("home", 11)},
		AwayTeam: TeamSheet{ClubID: "club-away", Score: 1, Players: sheet("away", 11)},
		Odds:     Odds{HomeWin: 0.5, Draw: 0.3, AwayWin: 0.2},
	}
}

func sheet(prefix string, starters int) []Appearance {
	out := make([]Appearance, 0, starters+2)
	for i := 0; i < starters; i++ {
		out = append(out, Appearance{PlayerID: prefix + "-p" + string(rune('a'+i)), Starter: true})
	}
	out = append(out, Appearance{PlayerID: prefix + "-sub1"}, Appearance{PlayerID: prefix + "-sub2"})
	return out
}

func TestMatchValidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		mutate  func(*Match)
		wantErr string
	}{
		{name: "valid", mutate: func(*Match) {}},
		{
			name:    "future date",
			mutate:  func(m *Match) { m.Date = now.Add(time.Hour) },
			wantErr: "must not be in the future",
		},
		{
			name:    "missing venue",
			mutate:  func(m *Match) { m.Venue = "" },
			wantErr: "venue is required",
		},
		{
			name:    "same club both sides",
			mutate:  func(m *Match) { m.AwayTeam.ClubID = m.HomeTeam.ClubID },
			wantErr: "must be different clubs",
		},
		{
			name:    "negative score",
			mutate:  func(m *Match) { m.AwayTeam.Score = -1 },
			wantErr: "scores must not be negative",
		},
		{
			name:    "odds sum too high",
			mutate:  func(m *Match) { m.Odds = Odds{HomeWin: 0.5, Draw: 0.3, AwayWin: 0.3} },
			wantErr: "sum to 1: got 1.10",
		},
		{
			name:    "odds out of range",
			mutate:  func(m *Match) { m.Odds.HomeWin = 1.2 },
			wantErr: "odds.homeWin",
		},
		{
			name:    "ten home starters",
			mutate:  func(m *Match) { m.HomeTeam.Players = sheet("home", 10) },
			wantErr: "home(10) away(11)",
		},
		{
			name:    "nine away starters",
			mutate:  func(m *Match) { m.AwayTeam.Players = sheet("away", 9) },
			wantErr: "home(11) away(9)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validMatch(now)
			tc.mutate(&m)

			err := m.Validate(now)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid match, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestOddsSumAtToleranceBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m := validMatch(now)
	m.Odds = Odds{HomeWin: 0.5, Draw: 0.3, AwayWin: 0.205}
	if err := m.Validate(now); err != nil {
		t.Fatalf("sum within tolerance should pass: %v", err)
	}

	m.Odds = Odds{HomeWin: 0.5, Draw: 0.3, AwayWin: 0.21}
	if err := m.Validate(now); err == nil {
		t.Fatal("sum at tolerance edge should fail")
	}
}

func TestStarterHelpers(t *testing.T) {
	sheet := TeamSheet{Players: []Appearance{
		{PlayerID: "a", Starter: true},
		{PlayerID: "b"},
		{PlayerID: "c", Starter: true},
	}}

	if got := sheet.StarterCount(); got != 2 {
		t.Fatalf("starter count = %d, want 2", got)
	}
	ids := sheet.StarterIDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
		t.Fatalf("unexpected starter ids: %v", ids)
	}
}
