package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/club-admin/internal/domain/player"
	"github.com/riskibarqy/club-admin/internal/usecase"
)

type createPlayerRequest struct {
	Name          string  `json:"name" validate:"required,max=120"`
	DateOfBirth   string  `json:"dateOfBirth" validate:"required"`
	PositionID    string  `json:"positionId" validate:"required"`
	CountryID     string  `json:"countryId" validate:"required"`
	CurrentClubID string  `json:"currentClubId"`
	Rating        float64 `json:"rating" validate:"min=0,max=100"`
}

type updatePlayerRequest struct {
	Name             string   `json:"name" validate:"required,max=120"`
	DateOfBirth      string   `json:"dateOfBirth" validate:"required"`
	PositionID       string   `json:"positionId" validate:"required"`
	CountryID        string   `json:"countryId" validate:"required"`
	CurrentClubID    string   `json:"currentClubId"`
	RatingAdjustment *float64 `json:"ratingAdjustment"`
}

type clubSpellDTO struct {
	ClubID string `json:"clubId"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
}

type nationalTeamSpellDTO struct {
	TeamID string `json:"teamId"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
}

type playerDTO struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	DateOfBirth    string                 `json:"dateOfBirth"`
	PositionID     string                 `json:"positionId"`
	CountryID      string                 `json:"countryId"`
	CurrentClub    *clubSpellDTO          `json:"currentClub,omitempty"`
	PreviousClubs  []clubSpellDTO         `json:"previousClubs,omitempty"`
	NationalTeams  []nationalTeamSpellDTO `json:"nationalTeams,omitempty"`
	Rating         float64                `json:"rating"`
	AbsoluteRating float64                `json:"absoluteRating"`
}

type playerListDTO struct {
	Items      []playerDTO   `json:"items"`
	Pagination paginationDTO `json:"pagination"`
}

type duplicateCheckDTO struct {
	Duplicate bool   `json:"duplicate"`
	PlayerID  string `json:"playerId,omitempty"`
}

type ratingEntryDTO struct {
	Date    string  `json:"date"`
	Change  float64 `json:"change"`
	Type    string  `json:"type"`
	MatchID string  `json:"matchId,omitempty"`
}

type ratingHistoryDTO struct {
	PlayerID       string           `json:"playerId"`
	Baseline       float64          `json:"baseline"`
	AbsoluteRating float64          `json:"absoluteRating"`
	Entries        []ratingEntryDTO `json:"entries"`
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, usecase.CreatePlayerInput{
		Name:          req.Name,
		DateOfBirth:   dateOfBirth,
		PositionID:    req.PositionID,
		CountryID:     req.CountryID,
		CurrentClubID: req.CurrentClubID,
		Rating:        req.Rating,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")

	var req updatePlayerRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.Update(ctx, usecase.UpdatePlayerInput{
		ID:               playerID,
		Name:             req.Name,
		DateOfBirth:      dateOfBirth,
		PositionID:       req.PositionID,
		CountryID:        req.CountryID,
		CurrentClubID:    req.CurrentClubID,
		RatingAdjustment: req.RatingAdjustment,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	page, limit, search := parseListQuery(r)
	result, err := h.playerService.List(ctx, player.ListFilter{Page: page, Limit: limit, Search: search})
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(result.Players))
	for _, p := range result.Players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, playerListDTO{
		Items: items,
		Pagination: paginationDTO{
			CurrentPage: result.CurrentPage,
			TotalPages:  result.TotalPages,
			TotalItems:  result.Total,
		},
	})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	p, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(p))
}

func (h *Handler) CheckDuplicatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckDuplicatePlayer")
	defer span.End()

	query := r.URL.Query()
	name := strings.TrimSpace(query.Get("name"))
	dateOfBirth, err := parseDate(query.Get("dateOfBirth"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	check, err := h.playerService.CheckDuplicate(ctx, name, dateOfBirth)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, duplicateCheckDTO{
		Duplicate: check.Duplicate,
		PlayerID:  check.PlayerID,
	})
}

func (h *Handler) GetPlayerRatingHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerRatingHistory")
	defer span.End()

	playerID := r.PathValue("playerID")
	view, err := h.playerService.RatingHistory(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get rating history failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	entries := make([]ratingEntryDTO, 0, len(view.Entries))
	for _, entry := range view.Entries {
		entries = append(entries, ratingEntryDTO{
			Date:    entry.Date.Format(time.RFC3339),
			Change:  entry.Change,
			Type:    string(entry.Type),
			MatchID: entry.MatchID,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, ratingHistoryDTO{
		PlayerID:       view.PlayerID,
		Baseline:       view.Baseline,
		AbsoluteRating: view.AbsoluteRating,
		Entries:        entries,
	})
}

func playerToDTO(p player.Player) playerDTO {
	dto := playerDTO{
		ID:             p.ID,
		Name:           p.Name,
		DateOfBirth:    p.DateOfBirth.Format("2006-01-02"),
		PositionID:     p.PositionID,
		CountryID:      p.CountryID,
		Rating:         p.Rating,
		AbsoluteRating: p.AbsoluteRating(),
	}

	if p.CurrentClub.ClubID != "" {
		spell := clubSpellToDTO(p.CurrentClub)
		dto.CurrentClub = &spell
	}
	for _, spell := range p.PreviousClubs {
		dto.PreviousClubs = append(dto.PreviousClubs, clubSpellToDTO(spell))
	}
	for _, spell := range p.NationalTeams {
		item := nationalTeamSpellDTO{TeamID: spell.TeamID}
		if !spell.From.IsZero() {
			item.From = spell.From.Format("2006-01-02")
		}
		if !spell.To.IsZero() {
			item.To = spell.To.Format("2006-01-02")
		}
		dto.NationalTeams = append(dto.NationalTeams, item)
	}

	return dto
}

func clubSpellToDTO(spell player.ClubSpell) clubSpellDTO {
	dto := clubSpellDTO{ClubID: spell.ClubID}
	if !spell.From.IsZero() {
		dto.From = spell.From.Format("2006-01-02")
	}
	if !spell.To.IsZero() {
		dto.To = spell.To.Format("2006-01-02")
	}
	return dto
}
