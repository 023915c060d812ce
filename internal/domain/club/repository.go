package club

import "context"

// Repository describes club persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, c Club) (Club, error)
	List(ctx context.Context) ([]Club, error)
	GetByID(ctx context.Context, id string) (Club, bool, error)
	GetByIDs(ctx context.Context, ids []string) ([]Club, error)
}
