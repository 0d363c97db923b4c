package golfer

import "context"

// Repository exposes golfer persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id string) (Golfer, bool, error)
	GetByIDs(ctx context.Context, ids []string) ([]Golfer, error)
	List(ctx context.Context) ([]Golfer, error)
	Create(ctx context.Context, item Golfer) error
	Update(ctx context.Context, item Golfer) error
}
