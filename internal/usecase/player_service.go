package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/club-admin/internal/domain/club"
	"github.com/riskibarqy/club-admin/internal/domain/country"
	"github.com/riskibarqy/club-admin/internal/domain/player"
	"github.com/riskibarqy/club-admin/internal/domain/position"
	idgen "github.com/riskibarqy/club-admin/internal/platform/id"
	"github.com/riskibarqy/club-admin/internal/platform/logging"
)

const (
	defaultPlayerPageLimit = 10
	maxPlayerPageLimit     = 100
)

// PlayerService owns the player registry: registration with duplicate
// detection, profile updates, and the rating-history read model.
type PlayerService struct {
	playerRepo   player.Repository
	positionRepo position.Repository
	countryRepo  country.Repository
	clubRepo     club.Repository
	idGen        idgen.Generator
	logger       *logging.Logger
	now          func() time.Time
}

func NewPlayerService(
	playerRepo player.Repository,
	positionRepo position.Repository,
	countryRepo country.Repository,
	clubRepo club.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo:   playerRepo,
		positionRepo: positionRepo,
		countryRepo:  countryRepo,
		clubRepo:     clubRepo,
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

type CreatePlayerInput struct {
	Name          string
	DateOfBirth   time.Time
	PositionID    string
	CountryID     string
	CurrentClubID string
	Rating        float64
}

type UpdatePlayerInput struct {
	ID            string
	Name          string
	DateOfBirth   time.Time
	PositionID    string
	CountryID     string
	CurrentClubID string

	// RatingAdjustment, when set, appends a manual adjustment entry to the
	// history instead of mutating the baseline rating.
	RatingAdjustment *float64
}

type DuplicateCheck struct {
	Duplicate bool
	PlayerID  string
}

type PlayerPage struct {
	Players     []player.Player
	CurrentPage int
	TotalPages  int
	Total       int
}

// RatingHistoryView is the per-player rating read model: the immutable
// baseline, the full change log, and the folded absolute value.
type RatingHistoryView struct {
	PlayerID       string
	Baseline       float64
	AbsoluteRating float64
	Entries        []player.RatingEntry
}

// Create registers a player. Two players with the same name (case-insensitive)
// and the same birth date are considered the same person and rejected.
func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	p := player.Player{
		Name:        strings.TrimSpace(input.Name),
		DateOfBirth: input.DateOfBirth,
		PositionID:  strings.TrimSpace(input.PositionID),
		CountryID:   strings.TrimSpace(input.CountryID),
		Rating:      input.Rating,
	}
	if clubID := strings.TrimSpace(input.CurrentClubID); clubID != "" {
		p.CurrentClub = player.ClubSpell{ClubID: clubID, From: s.now().UTC()}
	}

	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureReferencesExist(ctx, p); err != nil {
		return player.Player{}, err
	}

	existing, found, err := s.playerRepo.FindByNameAndBirthDate(ctx, p.Name, p.DateOfBirth)
	if err != nil {
		return player.Player{}, fmt.Errorf("duplicate lookup: %w", err)
	}
	if found {
		return player.Player{}, fmt.Errorf("%w: player %q born %s already exists as %s",
			ErrDuplicate, p.Name, p.DateOfBirth.Format("2006-01-02"), existing.ID)
	}

	newID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	p.ID = newID

	created, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

// CheckDuplicate previews the registration duplicate rule without writing.
func (s *PlayerService) CheckDuplicate(ctx context.Context, name string, dateOfBirth time.Time) (DuplicateCheck, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CheckDuplicate")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return DuplicateCheck{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if dateOfBirth.IsZero() {
		return DuplicateCheck{}, fmt.Errorf("%w: player date of birth is required", ErrInvalidInput)
	}

	existing, found, err := s.playerRepo.FindByNameAndBirthDate(ctx, name, dateOfBirth)
	if err != nil {
		return DuplicateCheck{}, fmt.Errorf("duplicate lookup: %w", err)
	}
	if !found {
		return DuplicateCheck{}, nil
	}

	return DuplicateCheck{Duplicate: true, PlayerID: existing.ID}, nil
}

// Update rewrites the profile fields of one player. The rating history is
// never replaced; a requested adjustment is appended as a new entry.
func (s *PlayerService) Update(ctx context.Context, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	existing, err := s.Get(ctx, input.ID)
	if err != nil {
		return player.Player{}, err
	}

	updated := existing
	updated.Name = strings.TrimSpace(input.Name)
	updated.DateOfBirth = input.DateOfBirth
	updated.PositionID = strings.TrimSpace(input.PositionID)
	updated.CountryID = strings.TrimSpace(input.CountryID)

	if clubID := strings.TrimSpace(input.CurrentClubID); clubID != existing.CurrentClub.ClubID {
		if existing.CurrentClub.ClubID != "" {
			closed := existing.CurrentClub
			closed.To = s.now().UTC()
			updated.PreviousClubs = append(append([]player.ClubSpell(nil), existing.PreviousClubs...), closed)
		}
		updated.CurrentClub = player.ClubSpell{}
		if clubID != "" {
			updated.CurrentClub = player.ClubSpell{ClubID: clubID, From: s.now().UTC()}
		}
	}

	if err := updated.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureReferencesExist(ctx, updated); err != nil {
		return player.Player{}, err
	}

	if input.RatingAdjustment != nil {
		entry := player.RatingEntry{
			Date:   s.now().UTC(),
			Change: *input.RatingAdjustment,
			Type:   player.RatingEntryAdjustment,
		}
		if err := entry.Validate(); err != nil {
			return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		updated.RatingHistory = append(append([]player.RatingEntry(nil), updated.RatingHistory...), entry)
	}

	saved, err := s.playerRepo.Update(ctx, updated)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	return saved, nil
}

func (s *PlayerService) List(ctx context.Context, filter player.ListFilter) (PlayerPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPlayerPageLimit
	}
	if filter.Limit > maxPlayerPageLimit {
		filter.Limit = maxPlayerPageLimit
	}

	items, total, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return PlayerPage{}, fmt.Errorf("list players: %w", err)
	}
	if total == 0 {
		return PlayerPage{Players: []player.Player{}, CurrentPage: 1}, nil
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit
	currentPage := filter.Page
	if currentPage > totalPages {
		currentPage = totalPages
	}

	return PlayerPage{
		Players:     items,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		Total:       total,
	}, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.GetByIDs(ctx, []string{playerID})
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if len(players) == 0 {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return players[0], nil
}

func (s *PlayerService) RatingHistory(ctx context.Context, playerID string) (RatingHistoryView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RatingHistory")
	defer span.End()

	p, err := s.Get(ctx, playerID)
	if err != nil {
		return RatingHistoryView{}, err
	}

	entries := p.RatingHistory
	if entries == nil {
		entries = []player.RatingEntry{}
	}

	return RatingHistoryView{
		PlayerID:       p.ID,
		Baseline:       p.Rating,
		AbsoluteRating: p.AbsoluteRating(),
		Entries:        entries,
	}, nil
}

func (s *PlayerService) ensureReferencesExist(ctx context.Context, p player.Player) error {
	if _, ok, err := s.positionRepo.GetByID(ctx, p.PositionID); err != nil {
		return fmt.Errorf("get position: %w", err)
	} else if !ok {
		return fmt.Errorf("%w: position=%s", ErrNotFound, p.PositionID)
	}

	if _, ok, err := s.countryRepo.GetCountryByID(ctx, p.CountryID); err != nil {
		return fmt.Errorf("get country: %w", err)
	} else if !ok {
		return fmt.Errorf("%w: country=%s", ErrNotFound, p.CountryID)
	}

	if clubID := p.CurrentClub.ClubID; clubID != "" {
		if _, ok, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
			return fmt.Errorf("get club: %w", err)
		} else if !ok {
			return fmt.Errorf("%w: club=%s", ErrNotFound, clubID)
		}
	}

	return nil
}
