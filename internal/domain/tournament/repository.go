package tournament

import "context"

// Repository exposes tournament persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id string) (Tournament, bool, error)
	List(ctx context.Context) ([]Tournament, error)
	Create(ctx context.Context, item Tournament) error
}
