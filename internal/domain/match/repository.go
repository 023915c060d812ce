package match

import "context"

// ListFilter narrows and pages a match listing. Search is a case-insensitive
// substring match against the venue.
type ListFilter struct {
	Page   int
	Limit  int
	Search string
}

// Repository describes match persistence needs from use cases. Create applies
// the Match invariants at the storage boundary before writing.
type Repository interface {
	Create(ctx context.Context, m Match) (Match, error)
	List(ctx context.Context, filter ListFilter) ([]Match, int, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
}
