package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fairwaypool/golf-pickem/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserRepository(users []user.User) *UserRepository {
	byID := make(map[string]user.User, len(users))
	for _, item := range users {
		byID[item.ID] = item
	}

	return &UserRepository{users: byID}
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.users[id]
	return item, ok, nil
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.users))
	for _, item := range r.users {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *UserRepository) Create(_ context.Context, item user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[item.ID] = item
	return nil
}
