package postgres

import (
	"time"

	"github.com/riskibarqy/club-admin/internal/domain/match"
)

const (
	matchSideHome = "home"
	matchSideAway = "away"
)

type matchTableModel struct {
	ID               string    `db:"id"`
	MatchDate        time.Time `db:"match_date"`
	Venue            string    `db:"venue"`
	HomeClubID       string    `db:"home_club_id"`
	AwayClubID       string    `db:"away_club_id"`
	HomeScore        int       `db:"home_score"`
	AwayScore        int       `db:"away_score"`
	OddsHomeWin      float64   `db:"odds_home_win"`
	OddsDraw         float64   `db:"odds_draw"`
	OddsAwayWin      float64   `db:"odds_away_win"`
	HomeRatingChange float64   `db:"home_rating_change"`
	AwayRatingChange float64   `db:"away_rating_change"`
	CreatedAt        time.Time `db:"created_at"`
}

type matchPlayerTableModel struct {
	MatchID  string `db:"match_id"`
	PlayerID string `db:"player_id"`
	Side     string `db:"side"`
	Starter  bool   `db:"starter"`
}

func matchToRow(m match.Match) matchTableModel {
	return matchTableModel{
		ID:               m.ID,
		MatchDate:        m.Date,
		Venue:            m.Venue,
		HomeClubID:       m.HomeTeam.ClubID,
		AwayClubID:       m.AwayTeam.ClubID,
		HomeScore:        m.HomeTeam.Score,
		AwayScore:        m.AwayTeam.Score,
		OddsHomeWin:      m.Odds.HomeWin,
		OddsDraw:         m.Odds.Draw,
		OddsAwayWin:      m.Odds.AwayWin,
		HomeRatingChange: m.HomeTeam.RatingChange,
		AwayRatingChange: m.AwayTeam.RatingChange,
		CreatedAt:        m.CreatedAt,
	}
}

func matchFromRow(row matchTableModel, players []matchPlayerTableModel) match.Match {
	m := match.Match{
		ID:    row.ID,
		Date:  row.MatchDate,
		Venue: row.Venue,
		HomeTeam: match.TeamSheet{
			ClubID:       row.HomeClubID,
			Score:        row.HomeScore,
			RatingChange: row.HomeRatingChange,
		},
		AwayTeam: match.TeamSheet{
			ClubID:       row.AwayClubID,
			Score:        row.AwayScore,
			RatingChange: row.AwayRatingChange,
		},
		Odds: match.Odds{
			HomeWin: row.OddsHomeWin,
			Draw:    row.OddsDraw,
			AwayWin: row.OddsAwayWin,
		},
		CreatedAt: row.CreatedAt,
	}

	for _, p := range players {
		appearance := match.Appearance{PlayerID: p.PlayerID, Starter: p.Starter}
		switch p.Side {
		case matchSideHome:
			m.HomeTeam.Players = append(m.HomeTeam.Players, appearance)
		case matchSideAway:
			m.AwayTeam.Players = append(m.AwayTeam.Players, appearance)
		}
	}

	return m
}
