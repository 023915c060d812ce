package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-admin/internal/domain/player"
	qb "github.com/riskibarqy/club-admin/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id", "name", "date_of_birth", "position_id", "country_id",
	"current_club", "previous_clubs", "national_teams", "rating",
	"created_at", "updated_at",
}

var ratingHistorySelectColumns = []string{
	"id", "player_id", "entry_date", "change", "entry_type", "match_id", "created_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	row, err := playerToRow(p)
	if err != nil {
		return player.Player{}, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return player.Player{}, fmt.Errorf("begin insert player tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := qb.InsertInto("players").
		Columns("id", "name", "date_of_birth", "position_id", "country_id",
			"current_club", "previous_clubs", "national_teams", "rating",
			"created_at", "updated_at").
		Values(row.ID, row.Name, row.DateOfBirth, row.PositionID, row.CountryID,
			row.CurrentClub, row.PreviousClubs, row.NationalTeams, row.Rating,
			row.CreatedAt, row.UpdatedAt).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	if err := insertRatingEntries(ctx, tx, p.ID, p.RatingHistory); err != nil {
		return player.Player{}, err
	}

	if err := tx.Commit(); err != nil {
		return player.Player{}, fmt.Errorf("commit insert player tx: %w", err)
	}

	return p, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (player.Player, error) {
	p.UpdatedAt = time.Now().UTC()

	row, err := playerToRow(p)
	if err != nil {
		return player.Player{}, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return player.Player{}, fmt.Errorf("begin update player tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := qb.Update("players").
		Set("name", row.Name).
		Set("date_of_birth", row.DateOfBirth).
		Set("position_id", row.PositionID).
		Set("country_id", row.CountryID).
		Set("current_club", row.CurrentClub).
		Set("previous_clubs", row.PreviousClubs).
		Set("national_teams", row.NationalTeams).
		Set("rating", row.Rating).
		Set("updated_at", row.UpdatedAt).
		Where(qb.Eq("id", p.ID)).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build update player query: %w", err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return player.Player{}, fmt.Errorf("update player rows affected: %w", err)
	}
	if affected == 0 {
		return player.Player{}, fmt.Errorf("player %s does not exist", p.ID)
	}

	// The history is append-only. The incoming player may carry new entries at
	// the tail; anything already persisted stays untouched.
	persisted, err := countRatingEntries(ctx, tx, p.ID)
	if err != nil {
		return player.Player{}, err
	}
	if persisted < len(p.RatingHistory) {
		if err := insertRatingEntries(ctx, tx, p.ID, p.RatingHistory[persisted:]); err != nil {
			return player.Player{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return player.Player{}, fmt.Errorf("commit update player tx: %w", err)
	}

	return r.getOne(ctx, p.ID)
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, int, error) {
	countBuilder := qb.Select("COUNT(*)").From("players")
	listBuilder := qb.Select(playerSelectColumns...).From("players")
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		countBuilder = countBuilder.Where(qb.ILike("name", pattern))
		listBuilder = listBuilder.Where(qb.ILike("name", pattern))
	}

	countQuery, countArgs, err := countBuilder.ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count players query: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count players: %w", err)
	}
	if total == 0 {
		return []player.Player{}, 0, nil
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	_, offset := clampPage(filter.Page, limit, total)

	query, args, err := listBuilder.
		OrderBy("name", "id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select players: %w", err)
	}

	players, err := r.attachRatingHistory(ctx, rows)
	if err != nil {
		return nil, 0, err
	}

	return players, total, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.In("id", stringSliceToAny(playerIDs))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	return r.attachRatingHistory(ctx, rows)
}

func (r *PlayerRepository) FindByNameAndBirthDate(ctx context.Context, name string, dateOfBirth time.Time) (player.Player, bool, error) {
	day := time.Date(dateOfBirth.Year(), dateOfBirth.Month(), dateOfBirth.Day(), 0, 0, 0, 0, time.UTC)

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Expr("lower(name) = lower(?)", name)).
		Where(qb.Eq("date_of_birth", day)).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build duplicate lookup query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("duplicate lookup: %w", err)
	}

	players, err := r.attachRatingHistory(ctx, []playerTableModel{row})
	if err != nil {
		return player.Player{}, false, err
	}

	return players[0], true, nil
}

func (r *PlayerRepository) AppendRatingHistory(ctx context.Context, playerID string, entry player.RatingEntry) (player.Player, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return player.Player{}, fmt.Errorf("begin append rating tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := qb.Update("players").
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build touch player query: %w", err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return player.Player{}, fmt.Errorf("touch player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return player.Player{}, fmt.Errorf("touch player rows affected: %w", err)
	}
	if affected == 0 {
		return player.Player{}, fmt.Errorf("player %s does not exist", playerID)
	}

	if err := insertRatingEntries(ctx, tx, playerID, []player.RatingEntry{entry}); err != nil {
		return player.Player{}, err
	}

	if err := tx.Commit(); err != nil {
		return player.Player{}, fmt.Errorf("commit append rating tx: %w", err)
	}

	return r.getOne(ctx, playerID)
}

func (r *PlayerRepository) getOne(ctx context.Context, playerID string) (player.Player, error) {
	players, err := r.GetByIDs(ctx, []string{playerID})
	if err != nil {
		return player.Player{}, err
	}
	if len(players) == 0 {
		return player.Player{}, fmt.Errorf("player %s does not exist", playerID)
	}
	return players[0], nil
}

func (r *PlayerRepository) attachRatingHistory(ctx context.Context, rows []playerTableModel) ([]player.Player, error) {
	if len(rows) == 0 {
		return []player.Player{}, nil
	}

	ids := make([]any, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	query, args, err := qb.Select(ratingHistorySelectColumns...).From("player_rating_history").
		Where(qb.In("player_id", ids)).
		OrderBy("player_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rating history query: %w", err)
	}

	var historyRows []ratingHistoryTableModel
	if err := r.db.SelectContext(ctx, &historyRows, query, args...); err != nil {
		return nil, fmt.Errorf("select rating history: %w", err)
	}

	historyByPlayer := make(map[string][]player.RatingEntry, len(rows))
	for _, row := range historyRows {
		historyByPlayer[row.PlayerID] = append(historyByPlayer[row.PlayerID], ratingEntryFromRow(row))
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		p, err := playerFromRow(row)
		if err != nil {
			return nil, err
		}
		p.RatingHistory = historyByPlayer[row.ID]
		out = append(out, p)
	}

	return out, nil
}

func countRatingEntries(ctx context.Context, tx *sqlx.Tx, playerID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("player_rating_history").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count rating history query: %w", err)
	}

	var total int
	if err := tx.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count rating history: %w", err)
	}

	return total, nil
}

func insertRatingEntries(ctx context.Context, tx *sqlx.Tx, playerID string, entries []player.RatingEntry) error {
	if len(entries) == 0 {
		return nil
	}

	builder := qb.InsertInto("player_rating_history").
		Columns("player_id", "entry_date", "change", "entry_type", "match_id")
	for _, entry := range entries {
		matchID := sql.NullString{String: entry.MatchID, Valid: entry.MatchID != ""}
		builder = builder.Values(playerID, entry.Date, entry.Change, string(entry.Type), matchID)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert rating history query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert rating history: %w", err)
	}

	return nil
}
