package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-admin/internal/domain/match"
	qb "github.com/riskibarqy/club-admin/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

var matchSelectColumns = []string{
	"id", "match_date", "venue", "home_club_id", "away_club_id",
	"home_score", "away_score", "odds_home_win", "odds_draw", "odds_away_win",
	"home_rating_change", "away_rating_change", "created_at",
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	if err := m.Validate(time.Now().UTC()); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	row := matchToRow(m)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return match.Match{}, fmt.Errorf("begin insert match tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := qb.InsertInto("matches").
		Columns("id", "match_date", "venue", "home_club_id", "away_club_id",
			"home_score", "away_score", "odds_home_win", "odds_draw", "odds_away_win",
			"home_rating_change", "away_rating_change", "created_at").
		Values(row.ID, row.MatchDate, row.Venue, row.HomeClubID, row.AwayClubID,
			row.HomeScore, row.AwayScore, row.OddsHomeWin, row.OddsDraw, row.OddsAwayWin,
			row.HomeRatingChange, row.AwayRatingChange, row.CreatedAt).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	builder := qb.InsertInto("match_players").Columns("match_id", "player_id", "side", "starter")
	for _, p := range m.HomeTeam.Players {
		builder = builder.Values(m.ID, p.PlayerID, matchSideHome, p.Starter)
	}
	for _, p := range m.AwayTeam.Players {
		builder = builder.Values(m.ID, p.PlayerID, matchSideAway, p.Starter)
	}

	playersQuery, playersArgs, err := builder.ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match players query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, playersQuery, playersArgs...); err != nil {
		return match.Match{}, fmt.Errorf("insert match players: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return match.Match{}, fmt.Errorf("commit insert match tx: %w", err)
	}

	return m, nil
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, int, error) {
	countBuilder := qb.Select("COUNT(*)").From("matches")
	listBuilder := qb.Select(matchSelectColumns...).From("matches")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		countBuilder = countBuilder.Where(qb.ILike("venue", pattern))
		listBuilder = listBuilder.Where(qb.ILike("venue", pattern))
	}

	countQuery, countArgs, err := countBuilder.ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count matches query: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count matches: %w", err)
	}
	if total == 0 {
		return []match.Match{}, 0, nil
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	_, offset := clampPage(filter.Page, limit, total)

	query, args, err := listBuilder.
		OrderBy("match_date DESC", "id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select matches: %w", err)
	}

	matches, err := r.attachPlayers(ctx, rows)
	if err != nil {
		return nil, 0, err
	}

	return matches, total, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchSelectColumns...).From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match: %w", err)
	}

	matches, err := r.attachPlayers(ctx, []matchTableModel{row})
	if err != nil {
		return match.Match{}, false, err
	}

	return matches[0], true, nil
}

func (r *MatchRepository) attachPlayers(ctx context.Context, rows []matchTableModel) ([]match.Match, error) {
	if len(rows) == 0 {
		return []match.Match{}, nil
	}

	ids := make([]any, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	query, args, err := qb.Select("match_id", "player_id", "side", "starter").From("match_players").
		Where(qb.In("match_id", ids)).
		OrderBy("match_id", "side", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match players query: %w", err)
	}

	var playerRows []matchPlayerTableModel
	if err := r.db.SelectContext(ctx, &playerRows, query, args...); err != nil {
		return nil, fmt.Errorf("select match players: %w", err)
	}

	playersByMatch := make(map[string][]matchPlayerTableModel, len(rows))
	for _, row := range playerRows {
		playersByMatch[row.MatchID] = append(playersByMatch[row.MatchID], row)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row, playersByMatch[row.ID]))
	}

	return out, nil
}
