package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-admin/internal/domain/country"
	"github.com/riskibarqy/club-admin/internal/domain/position"
	qb "github.com/riskibarqy/club-admin/internal/platform/querybuilder"
)

type countryTableModel struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Code string `db:"code"`
}

type nationalTeamTableModel struct {
	ID        string `db:"id"`
	CountryID string `db:"country_id"`
	Name      string `db:"name"`
	AgeLevel  string `db:"age_level"`
}

type positionTableModel struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Category string `db:"category"`
}

type CountryRepository struct {
	db *sqlx.DB
}

func NewCountryRepository(db *sqlx.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) ListCountries(ctx context.Context) ([]country.Country, error) {
	query, args, err := qb.Select("id", "name", "code").From("countries").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select countries query: %w", err)
	}

	var rows []countryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select countries: %w", err)
	}

	out := make([]country.Country, 0, len(rows))
	for _, row := range rows {
		out = append(out, country.Country{ID: row.ID, Name: row.Name, Code: row.Code})
	}

	return out, nil
}

func (r *CountryRepository) GetCountryByID(ctx context.Context, id string) (country.Country, bool, error) {
	query, args, err := qb.Select("id", "name", "code").From("countries").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return country.Country{}, false, fmt.Errorf("build select country query: %w", err)
	}

	var row countryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return country.Country{}, false, nil
		}
		return country.Country{}, false, fmt.Errorf("select country: %w", err)
	}

	return country.Country{ID: row.ID, Name: row.Name, Code: row.Code}, true, nil
}

func (r *CountryRepository) ListNationalTeamsByCountry(ctx context.Context, countryID string) ([]country.NationalTeam, error) {
	query, args, err := qb.Select("id", "country_id", "name", "age_level").From("national_teams").
		Where(qb.Eq("country_id", countryID)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select national teams query: %w", err)
	}

	var rows []nationalTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select national teams: %w", err)
	}

	out := make([]country.NationalTeam, 0, len(rows))
	for _, row := range rows {
		out = append(out, country.NationalTeam{
			ID:        row.ID,
			CountryID: row.CountryID,
			Name:      row.Name,
			AgeLevel:  row.AgeLevel,
		})
	}

	return out, nil
}

type PositionRepository struct {
	db *sqlx.DB
}

func NewPositionRepository(db *sqlx.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) List(ctx context.Context) ([]position.Position, error) {
	query, args, err := qb.Select("id", "name", "category").From("positions").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select positions query: %w", err)
	}

	var rows []positionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select positions: %w", err)
	}

	out := make([]position.Position, 0, len(rows))
	for _, row := range rows {
		out = append(out, position.Position{ID: row.ID, Name: row.Name, Category: row.Category})
	}

	return out, nil
}

func (r *PositionRepository) GetByID(ctx context.Context, id string) (position.Position, bool, error) {
	query, args, err := qb.Select("id", "name", "category").From("positions").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return position.Position{}, false, fmt.Errorf("build select position query: %w", err)
	}

	var row positionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return position.Position{}, false, nil
		}
		return position.Position{}, false, fmt.Errorf("select position: %w", err)
	}

	return position.Position{ID: row.ID, Name: row.Name, Category: row.Category}, true, nil
}
