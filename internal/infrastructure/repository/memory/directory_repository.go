package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/club-admin/internal/domain/country"
	"github.com/riskibarqy/club-admin/internal/domain/position"
)

// CountryRepository serves the country and national-team reference data.
type CountryRepository struct {
	mu             sync.RWMutex
	countries      map[string]country.Country
	teamsByCountry map[string][]country.NationalTeam
}

func NewCountryRepository(countries []country.Country, teams []country.NationalTeam) *CountryRepository {
	index := make(map[string]country.Country, len(countries))
	for _, c := range countries {
		index[c.ID] = c
	}

	teamsByCountry := make(map[string][]country.NationalTeam)
	for _, t := range teams {
		teamsByCountry[t.CountryID] = append(teamsByCountry[t.CountryID], t)
	}

	return &CountryRepository{
		countries:      index,
		teamsByCountry: teamsByCountry,
	}
}

func (r *CountryRepository) ListCountries(_ context.Context) ([]country.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]country.Country, 0, len(r.countries))
	for _, c := range r.countries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *CountryRepository) GetCountryByID(_ context.Context, id string) (country.Country, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.countries[id]

	return c, ok, nil
}

func (r *CountryRepository) ListNationalTeamsByCountry(_ context.Context, countryID string) ([]country.NationalTeam, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsByCountry[countryID]
	out := make([]country.NationalTeam, 0, len(teams))
	out = append(out, teams...)

	return out, nil
}

// PositionRepository serves the playing-position reference data.
type PositionRepository struct {
	mu        sync.RWMutex
	positions map[string]position.Position
	order     []string
}

func NewPositionRepository(seed []position.Position) *PositionRepository {
	positions := make(map[string]position.Position, len(seed))
	order := make([]string, 0, len(seed))
	for _, p := range seed {
		positions[p.ID] = p
		order = append(order, p.ID)
	}

	return &PositionRepository{positions: positions, order: order}
}

func (r *PositionRepository) List(_ context.Context) ([]position.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]position.Position, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.positions[id])
	}

	return out, nil
}

func (r *PositionRepository) GetByID(_ context.Context, id string) (position.Position, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.positions[id]

	return p, ok, nil
}
