package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fairwaypool/golf-pickem/internal/domain/golfer"
)

type GolferRepository struct {
	mu      sync.RWMutex
	golfers map[string]golfer.Golfer
}

func NewGolferRepository(golfers []golfer.Golfer) *GolferRepository {
	byID := make(map[string]golfer.Golfer, len(golfers))
	for _, item := range golfers {
		byID[item.ID] = item
	}

	return &GolferRepository{golfers: byID}
}

func (r *GolferRepository) GetByID(_ context.Context, id string) (golfer.Golfer, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.golfers[id]
	return item, ok, nil
}

func (r *GolferRepository) GetByIDs(_ context.Context, ids []string) ([]golfer.Golfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]golfer.Golfer, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.golfers[id]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *GolferRepository) List(_ context.Context) ([]golfer.Golfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]golfer.Golfer, 0, len(r.golfers))
	for _, item := range r.golfers {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *GolferRepository) Create(_ context.Context, item golfer.Golfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.golfers[item.ID] = item
	return nil
}

func (r *GolferRepository) Update(_ context.Context, item golfer.Golfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.golfers[item.ID] = item
	return nil
}
