package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/club-admin/internal/domain/country"
	"github.com/riskibarqy/club-admin/internal/domain/position"
)

// DirectoryService serves the reference data players are registered against:
// countries, their national teams, and playing positions.
type DirectoryService struct {
	countryRepo  country.Repository
	positionRepo position.Repository
}

func NewDirectoryService(countryRepo country.Repository, positionRepo position.Repository) *DirectoryService {
	return &DirectoryService{countryRepo: countryRepo, positionRepo: positionRepo}
}

func (s *DirectoryService) ListCountries(ctx context.Context) ([]country.Country, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryService.ListCountries")
	defer span.End()

	countries, err := s.countryRepo.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}

	return countries, nil
}

func (s *DirectoryService) ListNationalTeams(ctx context.Context, countryID string) ([]country.NationalTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryService.ListNationalTeams")
	defer span.End()

	countryID = strings.TrimSpace(countryID)
	if countryID == "" {
		return nil, fmt.Errorf("%w: country id is required", ErrInvalidInput)
	}

	if _, exists, err := s.countryRepo.GetCountryByID(ctx, countryID); err != nil {
		return nil, fmt.Errorf("get country: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: country=%s", ErrNotFound, countryID)
	}

	teams, err := s.countryRepo.ListNationalTeamsByCountry(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("list national teams: %w", err)
	}

	return teams, nil
}

func (s *DirectoryService) ListPositions(ctx context.Context) ([]position.Position, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DirectoryService.ListPositions")
	defer span.End()

	positions, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}

	return positions, nil
}
