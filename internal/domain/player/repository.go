package player

import (
	"context"
	"time"
)

// ListFilter narrows and pages a player listing. Search is a case-insensitive
// substring match against the name.
type ListFilter struct {
	Page   int
	Limit  int
	Search string
}

// Repository describes player persistence needs from use cases.
// AppendRatingHistory must be an atomic append against a single player record
// and returns the player with the entry applied.
type Repository interface {
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) (Player, error)
	List(ctx context.Context, filter ListFilter) ([]Player, int, error)
	GetByIDs(ctx context.Context, playerIDs []string) ([]Player, error)
	FindByNameAndBirthDate(ctx context.Context, name string, dateOfBirth time.Time) (Player, bool, error)
	AppendRatingHistory(ctx context.Context, playerID string, entry RatingEntry) (Player, error)
}
