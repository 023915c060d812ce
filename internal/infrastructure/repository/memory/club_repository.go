package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/club-admin/internal/domain/club"
)

type ClubRepository struct {
	mu    sync.RWMutex
	clubs map[string]club.Club
}

func NewClubRepository(seed []club.Club) *ClubRepository {
	clubs := make(map[string]club.Club, len(seed))
	for _, c := range seed {
		clubs[c.ID] = c
	}

	return &ClubRepository{clubs: clubs}
}

func (r *ClubRepository) Create(_ context.Context, c club.Club) (club.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clubs[c.ID] = c

	return c, nil
}

func (r *ClubRepository) List(_ context.Context) ([]club.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]club.Club, 0, len(r.clubs))
	for _, c := range r.clubs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *ClubRepository) GetByID(_ context.Context, id string) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clubs[id]

	return c, ok, nil
}

func (r *ClubRepository) GetByIDs(_ context.Context, ids []string) ([]club.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]club.Club, 0, len(ids))
	for _, id := range ids {
		c, ok := r.clubs[id]
		if !ok {
			continue
		}
		out = append(out, c)
	}

	return out, nil
}
