package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/club-admin/internal/platform/logging"
	"github.com/riskibarqy/club-admin/internal/usecase"
)

type Handler struct {
	matchService     *usecase.MatchService
	playerService    *usecase.PlayerService
	clubService      *usecase.ClubService
	directoryService *usecase.DirectoryService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	playerService *usecase.PlayerService,
	clubService *usecase.ClubService,
	directoryService *usecase.DirectoryService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:     matchService,
		playerService:    playerService,
		clubService:      clubService,
		directoryService: directoryService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// parseListQuery reads page/limit/search. Absent or malformed numbers fall
// through as zero so the services apply their defaults.
func parseListQuery(r *http.Request) (int, int, string) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(strings.TrimSpace(query.Get("page")))
	limit, _ := strconv.Atoi(strings.TrimSpace(query.Get("limit")))
	search := strings.TrimSpace(query.Get("search"))

	return page, limit, search
}

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", usecase.ErrInvalidInput)
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}

	return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD or RFC 3339", usecase.ErrInvalidInput, value)
}

type paginationDTO struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}
