package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/club-admin/internal/domain/club"
	"github.com/riskibarqy/club-admin/internal/usecase"
)

type createClubRequest struct {
	Name   string `json:"name" validate:"required,max=120"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type clubDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type countryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type nationalTeamDTO struct {
	ID        string `json:"id"`
	CountryID string `json:"countryId"`
	Name      string `json:"name"`
	AgeLevel  string `json:"ageLevel"`
}

type positionDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClub")
	defer span.End()

	var req createClubRequest
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

	created, err := h.clubService.Create(ctx, usecase.CreateClubInput{
		Name:   req.Name,
		Status: club.Status(req.Status),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create club failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, clubToDTO(created))
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	clubs, err := h.clubService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, c := range clubs {
		items = append(items, clubToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClub")
	defer span.End()

	clubID := r.PathValue("clubID")
	c, err := h.clubService.Get(ctx, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "get club failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubToDTO(c))
}

func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCountries")
	defer span.End()

	countries, err := h.directoryService.ListCountries(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list countries failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]countryDTO, 0, len(countries))
	for _, c := range countries {
		items = append(items, countryDTO{ID: c.ID, Name: c.Name, Code: c.Code})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListNationalTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNationalTeams")
	defer span.End()

	countryID := r.PathValue("countryID")
	teams, err := h.directoryService.ListNationalTeams(ctx, countryID)
	if err != nil {
		h.logger.WarnContext(ctx, "list national teams failed", "country_id", countryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]nationalTeamDTO, 0, len(teams))
	for _, team := range teams {
		items = append(items, nationalTeamDTO{
			ID:        team.ID,
			CountryID: team.CountryID,
			Name:      team.Name,
			AgeLevel:  team.AgeLevel,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	positions, err := h.directoryService.ListPositions(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list positions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]positionDTO, 0, len(positions))
	for _, p := range positions {
		items = append(items, positionDTO{ID: p.ID, Name: p.Name, Category: p.Category})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func clubToDTO(c club.Club) clubDTO {
	return clubDTO{ID: c.ID, Name: c.Name, Status: string(c.Status)}
}
