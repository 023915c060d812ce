package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/club-admin/internal/domain/match"
	"github.com/riskibarqy/club-admin/internal/usecase"
)

type matchOddsRequest struct {
	HomeWin float64 `json:"homeWin" validate:"min=0,max=1"`
	Draw    float64 `json:"draw" validate:"min=0,max=1"`
	AwayWin float64 `json:"awayWin" validate:"min=0,max=1"`
}

type matchAppearanceRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Starter  bool   `json:"starter"`
}

type matchTeamSheetRequest struct {
	ClubID  string                   `json:"clubId" validate:"required"`
	Score   int                      `json:"score" validate:"min=0"`
	Players []matchAppearanceRequest `json:"players" validate:"required,min=11,dive"`
}

type submitMatchRequest struct {
	Date     string                `json:"date" validate:"required"`
	Venue    string                `json:"venue" validate:"required,max=200"`
	HomeTeam matchTeamSheetRequest `json:"homeTeam" validate:"required"`
	AwayTeam matchTeamSheetRequest `json:"awayTeam" validate:"required"`
	Odds     matchOddsRequest      `json:"odds"`
}

type oddsDTO struct {
	HomeWin float64 `json:"homeWin"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"awayWin"`
}

type appearanceDTO struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName,omitempty"`
	Starter    bool   `json:"starter"`
}

type teamSheetDTO struct {
	ClubID       string          `json:"clubId"`
	ClubName     string          `json:"clubName,omitempty"`
	Score        int             `json:"score"`
	RatingChange float64         `json:"ratingChange"`
	Players      []appearanceDTO `json:"players"`
}

type matchDTO struct {
	ID        string       `json:"id"`
	Date      string       `json:"date"`
	Venue     string       `json:"venue"`
	HomeTeam  teamSheetDTO `json:"homeTeam"`
	AwayTeam  teamSheetDTO `json:"awayTeam"`
	Odds      oddsDTO      `json:"odds"`
	CreatedAt string       `json:"createdAt,omitempty"`
}

type ratingChangesDTO struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

type submitMatchResponseDTO struct {
	Match         matchDTO         `json:"match"`
	RatingChanges ratingChangesDTO `json:"ratingChanges"`
}

type teamPreviewDTO struct {
	ExpectedPoints float64 `json:"expectedPoints"`
	ActualPoints   float64 `json:"actualPoints"`
	RatingChange   float64 `json:"ratingChange"`
}

type matchPreviewDTO struct {
	Home teamPreviewDTO `json:"home"`
	Away teamPreviewDTO `json:"away"`
}

type matchListDTO struct {
	Items      []matchDTO    `json:"items"`
	Pagination paginationDTO `json:"pagination"`
}

func (h *Handler) SubmitMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitMatch")
	defer span.End()

	input, err := h.decodeSubmitMatch(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.matchService.Submit(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "submit match failed", "venue", input.Venue, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, submitMatchResponseDTO{
		Match: resolvedMatchToDTO(ctx, out.Match),
		RatingChanges: ratingChangesDTO{
			Home: out.RatingChanges.Home,
			Away: out.RatingChanges.Away,
		},
	})
}

func (h *Handler) PreviewMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewMatch")
	defer span.End()

	input, err := h.decodeSubmitMatch(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	preview, err := h.matchService.Preview(ctx, input)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchPreviewDTO{
		Home: teamPreviewDTO{
			ExpectedPoints: preview.Home.ExpectedPoints,
			ActualPoints:   preview.Home.ActualPoints,
			RatingChange:   preview.Home.RatingChange,
		},
		Away: teamPreviewDTO{
			ExpectedPoints: preview.Away.ExpectedPoints,
			ActualPoints:   preview.Away.ActualPoints,
			RatingChange:   preview.Away.RatingChange,
		},
	})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	page, limit, search := parseListQuery(r)
	result, err := h.matchService.ListMatches(ctx, match.ListFilter{Page: page, Limit: limit, Search: search})
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(result.Matches))
	for _, resolved := range result.Matches {
		items = append(items, resolvedMatchToDTO(ctx, resolved))
	}

	writeSuccess(ctx, w, http.StatusOK, matchListDTO{
		Items: items,
		Pagination: paginationDTO{
			CurrentPage: result.CurrentPage,
			TotalPages:  result.TotalPages,
			TotalItems:  result.Total,
		},
	})
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	resolved, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resolvedMatchToDTO(ctx, resolved))
}

func (h *Handler) decodeSubmitMatch(ctx context.Context, r *http.Request) (usecase.SubmitMatchInput, error) {
	var req submitMatchRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return usecase.SubmitMatchInput{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return usecase.SubmitMatchInput{}, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return usecase.SubmitMatchInput{}, err
	}

	return usecase.SubmitMatchInput{
		Date:     date,
		Venue:    strings.TrimSpace(req.Venue),
		HomeTeam: teamSheetRequestToInput(req.HomeTeam),
		AwayTeam: teamSheetRequestToInput(req.AwayTeam),
		Odds: match.Odds{
			HomeWin: req.Odds.HomeWin,
			Draw:    req.Odds.Draw,
			AwayWin: req.Odds.AwayWin,
		},
	}, nil
}

func teamSheetRequestToInput(req matchTeamSheetRequest) usecase.TeamSheetInput {
	players := make([]match.Appearance, 0, len(req.Players))
	for _, appearance := range req.Players {
		players = append(players, match.Appearance{
			PlayerID: strings.TrimSpace(appearance.PlayerID),
			Starter:  appearance.Starter,
		})
	}

	return usecase.TeamSheetInput{
		ClubID:  strings.TrimSpace(req.ClubID),
		Score:   req.Score,
		Players: players,
	}
}

func resolvedMatchToDTO(ctx context.Context, resolved usecase.ResolvedMatch) matchDTO {
	ctx, span := startSpan(ctx, "httpapi.resolvedMatchToDTO")
	defer span.End()

	m := resolved.Match
	dto := matchDTO{
		ID:       m.ID,
		Date:     m.Date.Format(time.RFC3339),
		Venue:    m.Venue,
		HomeTeam: teamSheetToDTO(m.HomeTeam, resolved),
		AwayTeam: teamSheetToDTO(m.AwayTeam, resolved),
		Odds: oddsDTO{
			HomeWin: m.Odds.HomeWin,
			Draw:    m.Odds.Draw,
			AwayWin: m.Odds.AwayWin,
		},
	}
	if !m.CreatedAt.IsZero() {
		dto.CreatedAt = m.CreatedAt.Format(time.RFC3339)
	}

	return dto
}

func teamSheetToDTO(sheet match.TeamSheet, resolved usecase.ResolvedMatch) teamSheetDTO {
	players := make([]appearanceDTO, 0, len(sheet.Players))
	for _, appearance := range sheet.Players {
		players = append(players, appearanceDTO{
			PlayerID:   appearance.PlayerID,
			PlayerName: resolved.PlayerNames[appearance.PlayerID],
			Starter:    appearance.Starter,
		})
	}

	return teamSheetDTO{
		ClubID:       sheet.ClubID,
		ClubName:     resolved.ClubNames[sheet.ClubID],
		Score:        sheet.Score,
		RatingChange: sheet.RatingChange,
		Players:      players,
	}
}
