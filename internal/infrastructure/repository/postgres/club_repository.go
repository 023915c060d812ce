package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-admin/internal/domain/club"
	qb "github.com/riskibarqy/club-admin/internal/platform/querybuilder"
)

type clubTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type ClubRepository struct {
	db *sqlx.DB
}

var clubSelectColumns = []string{"id", "name", "status", "created_at"}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) Create(ctx context.Context, c club.Club) (club.Club, error) {
	query, args, err := qb.InsertInto("clubs").
		Columns("id", "name", "status").
		Values(c.ID, c.Name, string(c.Status)).
		ToSQL()
	if err != nil {
		return club.Club{}, fmt.Errorf("build insert club query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return club.Club{}, fmt.Errorf("insert club: %w", err)
	}

	return c, nil
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	query, args, err := qb.Select(clubSelectColumns...).From("clubs").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubFromRow(row))
	}

	return out, nil
}

func (r *ClubRepository) GetByID(ctx context.Context, id string) (club.Club, bool, error) {
	query, args, err := qb.Select(clubSelectColumns...).From("clubs").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build select club query: %w", err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("select club: %w", err)
	}

	return clubFromRow(row), true, nil
}

func (r *ClubRepository) GetByIDs(ctx context.Context, ids []string) ([]club.Club, error) {
	if len(ids) == 0 {
		return []club.Club{}, nil
	}

	query, args, err := qb.Select(clubSelectColumns...).From("clubs").
		Where(qb.In("id", stringSliceToAny(ids))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs by ids query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clubs by ids: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubFromRow(row))
	}

	return out, nil
}

func clubFromRow(row clubTableModel) club.Club {
	return club.Club{
		ID:     row.ID,
		Name:   row.Name,
		Status: club.Status(row.Status),
	}
}
