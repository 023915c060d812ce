package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/club-admin/internal/domain/player"
	"github.com/riskibarqy/club-admin/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-admin/internal/platform/id"
)

func newPlayerServiceForTest(playerRepo player.Repository) *PlayerService {
	positionRepo := memory.NewPositionRepository(memory.SeedPositions())
	countryRepo := memory.NewCountryRepository(memory.SeedCountries(), memory.SeedNationalTeams())
	clubRepo := memory.NewClubRepository(memory.SeedClubs())

	return NewPlayerService(playerRepo, positionRepo, countryRepo, clubRepo, id.NewRandomGenerator(), nil)
}

func validCreateInput() CreatePlayerInput {
	return CreatePlayerInput{
		Name:          "Pieter van Leeuwen",
		DateOfBirth:   time.Date(1999, time.May, 4, 0, 0, 0, 0, time.UTC),
		PositionID:    memory.PositionIDMidfielder,
		CountryID:     memory.CountryIDNetherlands,
		CurrentClubID: memory.ClubIDHarborCity,
		Rating:        70,
	}
}

func TestPlayerService_Create(t *testing.T) {
	svc := newPlayerServiceForTest(memory.NewPlayerRepository(nil))

	created, err := svc.Create(t.Context(), validCreateInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created player has no id")
	}
	if created.CurrentClub.ClubID != memory.ClubIDHarborCity {
		t.Fatalf("unexpected current club: %+v", created.CurrentClub)
	}
	if created.AbsoluteRating() != 70 {
		t.Fatalf("absolute rating %v, want baseline 70", created.AbsoluteRating())
	}
}

func TestPlayerService_Create_DuplicateNameAndBirthDate(t *testing.T) {
	svc := newPlayerServiceForTest(memory.NewPlayerRepository(nil))

	if _, err := svc.Create(t.Context(), validCreateInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Same person spelled with different casing is still a duplicate.
	input := validCreateInput()
	input.Name = "PIETER VAN LEEUWEN"
	_, err := svc.Create(t.Context(), input)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if !strings.Contains(err.Error(), "1999-05-04") {
		t.Fatalf("error does not name the birth date: %v", err)
	}

	// Same name on a different day is a different person.
	input = validCreateInput()
	input.DateOfBirth = time.Date(2001, time.May, 4, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Create(t.Context(), input); err != nil {
		t.Fatalf("create with different birth date failed: %v", err)
	}
}

func TestPlayerService_Create_UnknownReferences(t *testing.T) {
	svc := newPlayerServiceForTest(memory.NewPlayerRepository(nil))

	input := validCreateInput()
	input.PositionID = "pos-ghost"
	if _, err := svc.Create(t.Context(), input); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for position, got %v", err)
	}

	input = validCreateInput()
	input.CountryID = "country-ghost"
	if _, err := svc.Create(t.Context(), input); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for country, got %v", err)
	}

	input = validCreateInput()
	input.CurrentClubID = "club-ghost"
	if _, err := svc.Create(t.Context(), input); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for club, got %v", err)
	}
}

func TestPlayerService_CheckDuplicate(t *testing.T) {
	svc := newPlayerServiceForTest(memory.NewPlayerRepository(memory.SeedPlayers()))

	check, err := svc.CheckDuplicate(t.Context(), "jesse VAN dam", time.Date(1994, time.March, 12, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !check.Duplicate || check.PlayerID != "hc-gk-01" {
		t.Fatalf("unexpected duplicate check: %+v", check)
	}

	check, err = svc.CheckDuplicate(t.Context(), "Jesse van Dam", time.Date(1990, time.March, 12, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if check.Duplicate {
		t.Fatalf("different birth date flagged as duplicate: %+v", check)
	}
}

func TestPlayerService_Update_AppendsAdjustment(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := newPlayerServiceForTest(playerRepo)

	adjustment := -1.5
	updated, err := svc.Update(t.Context(), UpdatePlayerInput{
		ID:               "hc-gk-01",
		Name:             "Jesse van Dam",
		DateOfBirth:      time.Date(1994, time.March, 12, 0, 0, 0, 0, time.UTC),
		PositionID:       memory.PositionIDGoalkeeper,
		CountryID:        memory.CountryIDNetherlands,
		CurrentClubID:    memory.ClubIDHarborCity,
		RatingAdjustment: &adjustment,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if len(updated.RatingHistory) != 1 {
		t.Fatalf("history length %d, want 1", len(updated.RatingHistory))
	}
	entry := updated.RatingHistory[0]
	if entry.Type != player.RatingEntryAdjustment || entry.Change != -1.5 || entry.MatchID != "" {
		t.Fatalf("unexpected adjustment entry: %+v", entry)
	}
	if updated.AbsoluteRating() != 69.5 {
		t.Fatalf("absolute rating %v, want 69.5", updated.AbsoluteRating())
	}
}

func TestPlayerService_Update_ClubMoveClosesSpell(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := newPlayerServiceForTest(playerRepo)

	updated, err := svc.Update(t.Context(), UpdatePlayerInput{
		ID:            "hc-gk-01",
		Name:          "Jesse van Dam",
		DateOfBirth:   time.Date(1994, time.March, 12, 0, 0, 0, 0, time.UTC),
		PositionID:    memory.PositionIDGoalkeeper,
		CountryID:     memory.CountryIDNetherlands,
		CurrentClubID: memory.ClubIDRiverton,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.CurrentClub.ClubID != memory.ClubIDRiverton {
		t.Fatalf("current club %q, want riverton", updated.CurrentClub.ClubID)
	}
	if len(updated.PreviousClubs) != 1 {
		t.Fatalf("previous clubs %d, want 1", len(updated.PreviousClubs))
	}
	closed := updated.PreviousClubs[0]
	if closed.ClubID != memory.ClubIDHarborCity || closed.To.IsZero() {
		t.Fatalf("old spell not closed: %+v", closed)
	}
}

func TestPlayerService_Update_NotFound(t *testing.T) {
	svc := newPlayerServiceForTest(memory.NewPlayerRepository(nil))

	_, err := svc.Update(t.Context(), UpdatePlayerInput{ID: "missing", Name: "X"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_List_SearchAndPaging(t *testing.T) {
	svc := newPlayerServiceForTest(memory.NewPlayerRepository(memory.SeedPlayers()))

	page, err := svc.List(t.Context(), player.ListFilter{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 24 || page.TotalPages != 3 || len(page.Players) != 10 {
		t.Fatalf("unexpected paging: total=%d pages=%d len=%d", page.Total, page.TotalPages, len(page.Players))
	}

	page, err = svc.List(t.Context(), player.ListFilter{Page: 1, Limit: 10, Search: "van dam"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if page.Total != 1 || page.Players[0].ID != "hc-gk-01" {
		t.Fatalf("unexpected search result: %+v", page)
	}
}

func TestPlayerService_RatingHistory(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	svc := newPlayerServiceForTest(playerRepo)

	entry := player.RatingEntry{
		Date:    time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		Change:  1.2,
		Type:    player.RatingEntryMatch,
		MatchID: "match-1",
	}
	if _, err := playerRepo.AppendRatingHistory(t.Context(), "hc-gk-01", entry); err != nil {
		t.Fatalf("seed append failed: %v", err)
	}

	view, err := svc.RatingHistory(t.Context(), "hc-gk-01")
	if err != nil {
		t.Fatalf("rating history failed: %v", err)
	}
	if view.Baseline != 71 || view.AbsoluteRating != 72.2 {
		t.Fatalf("unexpected rating projection: %+v", view)
	}
	if len(view.Entries) != 1 || view.Entries[0].MatchID != "match-1" {
		t.Fatalf("unexpected entries: %+v", view.Entries)
	}
}
