package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/club-admin/internal/domain/club"
	"github.com/riskibarqy/club-admin/internal/domain/match"
	"github.com/riskibarqy/club-admin/internal/domain/player"
	"github.com/riskibarqy/club-admin/internal/domain/rating"
	idgen "github.com/riskibarqy/club-admin/internal/platform/id"
	"github.com/riskibarqy/club-admin/internal/platform/logging"
	"github.com/riskibarqy/club-admin/internal/platform/metrics"
	"github.com/riskibarqy/club-admin/internal/platform/workerpool"
)

const (
	defaultMatchPageLimit = 10
	maxMatchPageLimit     = 100
)

// MatchService owns match submission: validation, rating computation,
// persistence, and the fan-out of rating-history appends to every starter.
type MatchService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	clubRepo   club.Repository
	pool       *workerpool.Pool
	idGen      idgen.Generator
	recorder   *metrics.Recorder
	logger     *logging.Logger
	now        func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	playerRepo player.Repository,
	clubRepo club.Repository,
	pool *workerpool.Pool,
	idGen idgen.Generator,
	recorder *metrics.Recorder,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		clubRepo:   clubRepo,
		pool:       pool,
		idGen:      idGen,
		recorder:   recorder,
		logger:     logger,
		now:        time.Now,
	}
}

type TeamSheetInput struct {
	ClubID  string
	Score   int
	Players []match.Appearance
}

type SubmitMatchInput struct {
	Date     time.Time
	Venue    string
	HomeTeam TeamSheetInput
	AwayTeam TeamSheetInput
	Odds     match.Odds
}

// RatingChanges carries the signed per-team deltas computed for one match.
type RatingChanges struct {
	Home float64
	Away float64
}

type TeamPreview struct {
	ExpectedPoints float64
	ActualPoints   float64
	RatingChange   float64
}

// MatchPreview is the pre-submit calculation: same shared point scheme as the
// authoritative write path, no persistence.
type MatchPreview struct {
	Home TeamPreview
	Away TeamPreview
}

// ResolvedMatch pairs a match with the display names of every referenced club
// and player.
type ResolvedMatch struct {
	Match       match.Match
	ClubNames   map[string]string
	PlayerNames map[string]string
}

type SubmitMatchOutput struct {
	Match         ResolvedMatch
	RatingChanges RatingChanges
}

type MatchPage struct {
	Matches     []ResolvedMatch
	CurrentPage int
	TotalPages  int
	Total       int
}

// Submit records one match end-to-end. When the match was persisted but some
// starter appends failed, the returned output is still valid and the error is
// a *PartialPropagationError naming the players to reconcile.
func (s *MatchService) Submit(ctx context.Context, input SubmitMatchInput) (SubmitMatchOutput, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Submit")
	defer span.End()

	started := s.now()

	m := match.Match{
		Date:  input.Date,
		Venue: strings.TrimSpace(input.Venue),
		HomeTeam: match.TeamSheet{
			ClubID:  strings.TrimSpace(input.HomeTeam.ClubID),
			Score:   input.HomeTeam.Score,
			Players: input.HomeTeam.Players,
		},
		AwayTeam: match.TeamSheet{
			ClubID:  strings.TrimSpace(input.AwayTeam.ClubID),
			Score:   input.AwayTeam.Score,
			Players: input.AwayTeam.Players,
		},
		Odds: input.Odds,
	}

	if err := m.Validate(s.now().UTC()); err != nil {
		s.recorder.Submission(metrics.ResultRejected)
		return SubmitMatchOutput{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureClubsExist(ctx, m.HomeTeam.ClubID, m.AwayTeam.ClubID); err != nil {
		s.recorder.Submission(metrics.ResultRejected)
		return SubmitMatchOutput{}, err
	}

	changes := computeRatingChanges(m)
	m.HomeTeam.RatingChange = changes.Home
	m.AwayTeam.RatingChange = changes.Away

	newID, err := s.idGen.NewID()
	if err != nil {
		s.recorder.Submission(metrics.ResultFailed)
		return SubmitMatchOutput{}, fmt.Errorf("generate match id: %w", err)
	}
	m.ID = newID

	saved, err := s.matchRepo.Create(ctx, m)
	if err != nil {
		s.recorder.Submission(metrics.ResultFailed)
		return SubmitMatchOutput{}, fmt.Errorf("create match: %w", err)
	}

	applied, failed := s.propagateRatingChanges(ctx, saved, changes)

	resolved, resolveErr := s.resolveMatches(ctx, []match.Match{saved})
	out := SubmitMatchOutput{RatingChanges: changes}
	if resolveErr != nil {
		// The match is durably saved at this point; a failed name lookup must
		// not turn the response into a submission failure.
		s.logger.WarnContext(ctx, "resolve match names failed", "match_id", saved.ID, "error", resolveErr)
		out.Match = ResolvedMatch{Match: saved}
	} else {
		out.Match = resolved[0]
	}

	s.recorder.ObserveSubmitDuration(s.now().Sub(started))

	if len(failed) > 0 {
		s.recorder.Submission(metrics.ResultPartial)
		return out, &PartialPropagationError{MatchID: saved.ID, Applied: applied, Failed: failed}
	}

	s.recorder.Submission(metrics.ResultAccepted)

	return out, nil
}

// Preview computes both deltas without touching the store. It backs the
// client-side preview so the preview and the write path share one scheme.
func (s *MatchService) Preview(ctx context.Context, input SubmitMatchInput) (MatchPreview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Preview")
	defer span.End()

	if err := input.Odds.Validate(); err != nil {
		return MatchPreview{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.HomeTeam.Score < 0 || input.AwayTeam.Score < 0 {
		return MatchPreview{}, fmt.Errorf("%w: scores must not be negative: home(%d) away(%d)",
			ErrInvalidInput, input.HomeTeam.Score, input.AwayTeam.Score)
	}

	homeOdds := rating.Odds{Win: input.Odds.HomeWin, Draw: input.Odds.Draw, Loss: input.Odds.AwayWin}
	homeExpected := rating.ExpectedPoints(homeOdds)
	awayExpected := rating.ExpectedPoints(homeOdds.Reversed())
	homeActual := rating.ActualPoints(input.HomeTeam.Score, input.AwayTeam.Score)
	awayActual := rating.ActualPoints(input.AwayTeam.Score, input.HomeTeam.Score)

	return MatchPreview{
		Home: TeamPreview{
			ExpectedPoints: homeExpected,
			ActualPoints:   homeActual,
			RatingChange:   rating.Change(homeActual, homeExpected),
		},
		Away: TeamPreview{
			ExpectedPoints: awayExpected,
			ActualPoints:   awayActual,
			RatingChange:   rating.Change(awayActual, awayExpected),
		},
	}, nil
}

func (s *MatchService) ListMatches(ctx context.Context, filter match.ListFilter) (MatchPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultMatchPageLimit
	}
	if filter.Limit > maxMatchPageLimit {
		filter.Limit = maxMatchPageLimit
	}

	items, total, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return MatchPage{}, fmt.Errorf("list matches: %w", err)
	}
	if total == 0 {
		return MatchPage{Matches: []ResolvedMatch{}, CurrentPage: 1}, nil
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit
	currentPage := filter.Page
	if currentPage > totalPages {
		currentPage = totalPages
	}

	resolved, err := s.resolveMatches(ctx, items)
	if err != nil {
		return MatchPage{}, err
	}

	return MatchPage{
		Matches:     resolved,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		Total:       total,
	}, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (ResolvedMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return ResolvedMatch{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return ResolvedMatch{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return ResolvedMatch{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	resolved, err := s.resolveMatches(ctx, []match.Match{item})
	if err != nil {
		return ResolvedMatch{}, err
	}

	return resolved[0], nil
}

func (s *MatchService) ensureClubsExist(ctx context.Context, homeClubID, awayClubID string) error {
	clubs, err := s.clubRepo.GetByIDs(ctx, []string{homeClubID, awayClubID})
	if err != nil {
		return fmt.Errorf("get clubs: %w", err)
	}

	found := make(map[string]struct{}, len(clubs))
	for _, c := range clubs {
		found[c.ID] = struct{}{}
	}
	for _, id := range []string{homeClubID, awayClubID} {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: club=%s", ErrNotFound, id)
		}
	}

	return nil
}

func computeRatingChanges(m match.Match) RatingChanges {
	homeOdds := rating.Odds{Win: m.Odds.HomeWin, Draw: m.Odds.Draw, Loss: m.Odds.AwayWin}

	home := rating.Change(
		rating.ActualPoints(m.HomeTeam.Score, m.AwayTeam.Score),
		rating.ExpectedPoints(homeOdds),
	)
	away := rating.Change(
		rating.ActualPoints(m.AwayTeam.Score, m.HomeTeam.Score),
		rating.ExpectedPoints(homeOdds.Reversed()),
	)

	return RatingChanges{Home: home, Away: away}
}

type ratingTarget struct {
	playerID string
	side     string
	change   float64
}

// propagateRatingChanges appends one history entry per starter on both sides.
// The appends touch disjoint player records and have no mutual ordering, so
// they are dispatched on the shared pool and joined before returning.
func (s *MatchService) propagateRatingChanges(ctx context.Context, saved match.Match, changes RatingChanges) (int, []FailedRatingUpdate) {
	targets := make([]ratingTarget, 0, saved.HomeTeam.StarterCount()+saved.AwayTeam.StarterCount())
	for _, playerID := range saved.HomeTeam.StarterIDs() {
		targets = append(targets, ratingTarget{playerID: playerID, side: "home", change: changes.Home})
	}
	for _, playerID := range saved.AwayTeam.StarterIDs() {
		targets = append(targets, ratingTarget{playerID: playerID, side: "away", change: changes.Away})
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		applied int
		failed  []FailedRatingUpdate
	)

	for _, target := range targets {
		target := target
		entry := player.RatingEntry{
			Date:    saved.Date,
			Change:  target.change,
			Type:    player.RatingEntryMatch,
			MatchID: saved.ID,
		}

		wg.Add(1)
		submitErr := s.pool.Submit(func() {
			defer wg.Done()

			if _, err := s.playerRepo.AppendRatingHistory(ctx, target.playerID, entry); err != nil {
				s.recorder.RatingUpdate(metrics.ResultFailed)
				mu.Lock()
				failed = append(failed, FailedRatingUpdate{PlayerID: target.playerID, Side: target.side, Err: err})
				mu.Unlock()
				return
			}

			s.recorder.RatingUpdate(metrics.ResultApplied)
			mu.Lock()
			applied++
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			s.recorder.RatingUpdate(metrics.ResultFailed)
			mu.Lock()
			failed = append(failed, FailedRatingUpdate{PlayerID: target.playerID, Side: target.side, Err: submitErr})
			mu.Unlock()
		}
	}
	wg.Wait()

	// Stable order for error messages and logs regardless of dispatch order.
	sort.Slice(failed, func(i, j int) bool {
		if failed[i].Side != failed[j].Side {
			return failed[i].Side < failed[j].Side
		}
		return failed[i].PlayerID < failed[j].PlayerID
	})

	return applied, failed
}

// resolveMatches dereferences club and player names for a page of matches in
// two batched reads, fetched concurrently.
func (s *MatchService) resolveMatches(ctx context.Context, items []match.Match) ([]ResolvedMatch, error) {
	clubIDSet := make(map[string]struct{}, len(items)*2)
	playerIDSet := make(map[string]struct{})
	for _, m := range items {
		clubIDSet[m.HomeTeam.ClubID] = struct{}{}
		clubIDSet[m.AwayTeam.ClubID] = struct{}{}
		for _, appearance := range m.HomeTeam.Players {
			playerIDSet[appearance.PlayerID] = struct{}{}
		}
		for _, appearance := range m.AwayTeam.Players {
			playerIDSet[appearance.PlayerID] = struct{}{}
		}
	}

	clubIDs := make([]string, 0, len(clubIDSet))
	for id := range clubIDSet {
		clubIDs = append(clubIDs, id)
	}
	playerIDs := make([]string, 0, len(playerIDSet))
	for id := range playerIDSet {
		playerIDs = append(playerIDs, id)
	}

	var (
		clubs      []club.Club
		clubsErr   error
		players    []player.Player
		playersErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		clubs, clubsErr = s.clubRepo.GetByIDs(ctx, clubIDs)
	})
	wg.Go(func() {
		players, playersErr = s.playerRepo.GetByIDs(ctx, playerIDs)
	})
	wg.Wait()

	if clubsErr != nil {
		return nil, fmt.Errorf("resolve clubs: %w", clubsErr)
	}
	if playersErr != nil {
		return nil, fmt.Errorf("resolve players: %w", playersErr)
	}

	clubNames := make(map[string]string, len(clubs))
	for _, c := range clubs {
		clubNames[c.ID] = c.Name
	}
	playerNames := make(map[string]string, len(players))
	for _, p := range players {
		playerNames[p.ID] = p.Name
	}

	out := make([]ResolvedMatch, 0, len(items))
	for _, m := range items {
		out = append(out, ResolvedMatch{Match: m, ClubNames: clubNames, PlayerNames: playerNames})
	}

	return out, nil
}
