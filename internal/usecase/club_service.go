package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/club-admin/internal/domain/club"
	idgen "github.com/riskibarqy/club-admin/internal/platform/id"
)

// ClubService owns the club registry reads and registration.
type ClubService struct {
	clubRepo club.Repository
	idGen    idgen.Generator
}

func NewClubService(clubRepo club.Repository, idGen idgen.Generator) *ClubService {
	return &ClubService{clubRepo: clubRepo, idGen: idGen}
}

type CreateClubInput struct {
	Name   string
	Status club.Status
}

func (s *ClubService) Create(ctx context.Context, input CreateClubInput) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Create")
	defer span.End()

	status := input.Status
	if status == "" {
		status = club.StatusActive
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return club.Club{}, fmt.Errorf("generate club id: %w", err)
	}

	c := club.Club{
		ID:     newID,
		Name:   strings.TrimSpace(input.Name),
		Status: status,
	}
	if err := c.Validate(); err != nil {
		return club.Club{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.clubRepo.Create(ctx, c)
	if err != nil {
		return club.Club{}, fmt.Errorf("create club: %w", err)
	}

	return created, nil
}

func (s *ClubService) List(ctx context.Context) ([]club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.List")
	defer span.End()

	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}

	return clubs, nil
}

func (s *ClubService) Get(ctx context.Context, clubID string) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Get")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return club.Club{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}

	c, exists, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club: %w", err)
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
	}

	return c, nil
}
