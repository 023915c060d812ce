package country

import "context"

// Repository describes country reference-data reads from use cases.
type Repository interface {
	ListCountries(ctx context.Context) ([]Country, error)
	GetCountryByID(ctx context.Context, id string) (Country, bool, error)
	ListNationalTeamsByCountry(ctx context.Context, countryID string) ([]NationalTeam, error)
}
