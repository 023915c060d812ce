package position

import "context"

// Repository describes position reference-data reads from use cases.
type Repository interface {
	List(ctx context.Context) ([]Position, error)
	GetByID(ctx context.Context, id string) (Position, bool, error)
}
