package user

import "context"

// Repository exposes user persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id string) (User, bool, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, item User) error
}
