package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/club-admin/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
	now     func() time.Time
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		matches: make(map[string]match.Match),
		now:     time.Now,
	}
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := m.Validate(r.now().UTC()); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = r.now().UTC()
	}
	r.matches[m.ID] = cloneMatch(m)

	return cloneMatch(m), nil
}

func (r *MatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	all := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		if search != "" && !strings.Contains(strings.ToLower(m.Venue), search) {
			continue
		}
		all = append(all, cloneMatch(m))
	}

	// Newest first, ties broken by ID so pages are stable.
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].ID < all[j].ID
	})

	total := len(all)
	start, end := pageBounds(filter.Page, filter.Limit, total)

	return all[start:end], total, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[id]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(m), true, nil
}

func cloneMatch(m match.Match) match.Match {
	out := m
	out.HomeTeam.Players = append([]match.Appearance(nil), m.HomeTeam.Players...)
	out.AwayTeam.Players = append([]match.Appearance(nil), m.AwayTeam.Players...)
	return out
}
