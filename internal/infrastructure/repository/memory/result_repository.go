package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fairwaypool/golf-pickem/internal/domain/result"
)

type resultKey struct {
	tournamentID string
	golferID     string
}

type ResultRepository struct {
	mu      sync.RWMutex
	results map[resultKey]result.Result
}

func NewResultRepository(results []result.Result) *ResultRepository {
	byKey := make(map[resultKey]result.Result, len(results))
	for _, item := range results {
		byKey[resultKey{item.TournamentID, item.GolferID}] = item
	}

	return &ResultRepository{results: byKey}
}

func (r *ResultRepository) ListByTournament(_ context.Context, tournamentID string) ([]result.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.Result, 0, len(r.results))
	for _, item := range r.results {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GolferID < out[j].GolferID })

	return out, nil
}

func (r *ResultRepository) ListAll(_ context.Context) ([]result.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]result.Result, 0, len(r.results))
	for _, item := range r.results {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TournamentID != out[j].TournamentID {
			return out[i].TournamentID < out[j].TournamentID
		}
		return out[i].GolferID < out[j].GolferID
	})

	return out, nil
}

func (r *ResultRepository) HasAnyForTournament(_ context.Context, tournamentID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for key := range r.results {
		if key.tournamentID == tournamentID {
			return true, nil
		}
	}

	return false, nil
}

func (r *ResultRepository) UpsertBatch(_ context.Context, items []result.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.results[resultKey{item.TournamentID, item.GolferID}] = item
	}

	return nil
}
