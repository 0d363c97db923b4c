package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fairwaypool/golf-pickem/internal/domain/tournament"
)

type TournamentRepository struct {
	mu          sync.RWMutex
	tournaments map[string]tournament.Tournament
}

func NewTournamentRepository(tournaments []tournament.Tournament) *TournamentRepository {
	byID := make(map[string]tournament.Tournament, len(tournaments))
	for _, item := range tournaments {
		byID[item.ID] = item
	}

	return &TournamentRepository{tournaments: byID}
}

func (r *TournamentRepository) GetByID(_ context.Context, id string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.tournaments[id]
	return item, ok, nil
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.tournaments))
	for _, item := range r.tournaments {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TournamentRepository) Create(_ context.Context, item tournament.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tournaments[item.ID] = item
	return nil
}
