package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/club-admin/internal/domain/match"
)

func startingEleven(prefix string) []match.Appearance {
	out := make([]match.Appearance, 0, match.MinStarters)
	for i := 1; i <= match.MinStarters; i++ {
		out = append(out, match.Appearance{PlayerID: fmt.Sprintf("%s-%02d", prefix, i), Starter: true})
	}
	return out
}

func seedMatch(id string, date time.Time, venue string) match.Match {
	return match.Match{
		ID:    id,
		Date:  date,
		Venue: venue,
		HomeTeam: match.TeamSheet{
			ClubID:  ClubIDHarborCity,
			Score:   2,
			Players: startingEleven("hc"),
		},
		AwayTeam: match.TeamSheet{
			ClubID:  ClubIDRiverton,
			Score:   1,
			Players: startingEleven("rv"),
		},
		Odds: match.Odds{HomeWin: 0.5, Draw: 0.3, AwayWin: 0.2},
	}
}

func TestMatchRepository_CreateRejectsInvalidMatch(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository()
	ctx := context.Background()
	past := time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC)

	broken := seedMatch("match-broken", time.Now().UTC().Add(48*time.Hour), "Harbor Arena")
	broken.AwayTeam.ClubID = broken.HomeTeam.ClubID
	broken.HomeTeam.Players = nil
	broken.Odds = match.Odds{HomeWin: 1.5, Draw: 0.7, AwayWin: 0.5}

	_, err := repo.Create(ctx, broken)
	require.Error(t, err)

	_, ok, err := repo.GetByID(ctx, "match-broken")
	require.NoError(t, err)
	assert.False(t, ok, "invalid match must not be persisted")

	// Each invariant trips the boundary on its own.
	future := seedMatch("match-future", time.Now().UTC().Add(48*time.Hour), "Harbor Arena")
	_, err = repo.Create(ctx, future)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "future")

	sameClubs := seedMatch("match-same", past, "Harbor Arena")
	sameClubs.AwayTeam.ClubID = sameClubs.HomeTeam.ClubID
	_, err = repo.Create(ctx, sameClubs)
	require.Error(t, err)

	short := seedMatch("match-short", past, "Harbor Arena")
	short.HomeTeam.Players = short.HomeTeam.Players[:10]
	_, err = repo.Create(ctx, short)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "home(10) away(11)")

	badOdds := seedMatch("match-odds", past, "Harbor Arena")
	badOdds.Odds = match.Odds{HomeWin: 0.5, Draw: 0.4, AwayWin: 0.3}
	_, err = repo.Create(ctx, badOdds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1")
}

func TestMatchRepository_ListNewestFirst(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository()
	ctx := context.Background()
	base := time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, seedMatch(fmt.Sprintf("match-%d", i), base.AddDate(0, 0, i), "Harbor Arena"))
		require.NoError(t, err)
	}

	got, total, err := repo.List(ctx, match.ListFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, got, 3)
	assert.Equal(t, "match-2", got[0].ID)
	assert.Equal(t, "match-0", got[2].ID)
}

func TestMatchRepository_ListFiltersVenue(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository()
	ctx := context.Background()
	date := time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, seedMatch("match-arena", date, "Harbor Arena"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, seedMatch("match-park", date, "Riverton Park"))
	require.NoError(t, err)

	got, total, err := repo.List(ctx, match.ListFilter{Page: 1, Limit: 10, Search: "riverton"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "match-park", got[0].ID)
}

func TestMatchRepository_GetByIDClones(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, seedMatch("match-001", time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC), "Harbor Arena"))
	require.NoError(t, err)

	got, ok, err := repo.GetByID(ctx, "match-001")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got.HomeTeam.Players, 1)

	got.HomeTeam.Players[0].PlayerID = "tampered"

	fresh, ok, err := repo.GetByID(ctx, "match-001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hc-01", fresh.HomeTeam.Players[0].PlayerID)

	_, ok, err = repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
