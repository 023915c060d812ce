package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/club-admin/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
	now     func() time.Time
}

func NewPlayerRepository(seed []player.Player) *PlayerRepository {
	players := make(map[string]player.Player, len(seed))
	for _, p := range seed {
		players[p.ID] = clonePlayer(p)
	}

	return &PlayerRepository{
		players: players,
		now:     time.Now,
	}
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.players[p.ID] = clonePlayer(p)

	return clonePlayer(p), nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.players[p.ID]
	if !ok {
		return player.Player{}, fmt.Errorf("player %s does not exist", p.ID)
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = r.now().UTC()
	r.players[p.ID] = clonePlayer(p)

	return clonePlayer(p), nil
}

func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter) ([]player.Player, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	all := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		all = append(all, clonePlayer(p))
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID < all[j].ID
	})

	total := len(all)
	start, end := pageBounds(filter.Page, filter.Limit, total)

	return all[start:end], total, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := r.players[id]
		if !ok {
			continue
		}
		out = append(out, clonePlayer(p))
	}

	return out, nil
}

func (r *PlayerRepository) FindByNameAndBirthDate(_ context.Context, name string, dateOfBirth time.Time) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if strings.EqualFold(p.Name, name) && sameDay(p.DateOfBirth, dateOfBirth) {
			return clonePlayer(p), true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) AppendRatingHistory(_ context.Context, playerID string, entry player.RatingEntry) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[playerID]
	if !ok {
		return player.Player{}, fmt.Errorf("player %s does not exist", playerID)
	}

	p = clonePlayer(p)
	p.RatingHistory = append(p.RatingHistory, entry)
	p.UpdatedAt = r.now().UTC()
	r.players[playerID] = p

	return clonePlayer(p), nil
}

func sameDay(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func clonePlayer(p player.Player) player.Player {
	out := p
	out.PreviousClubs = append([]player.ClubSpell(nil), p.PreviousClubs...)
	out.NationalTeams = append([]player.NationalTeamSpell(nil), p.NationalTeams...)
	out.RatingHistory = append([]player.RatingEntry(nil), p.RatingHistory...)
	return out
}
