package memory

import (
	"context"
	"sync"

	"github.com/fairwaypool/golf-pickem/internal/domain/pick"
)

type PickRepository struct {
	mu    sync.RWMutex
	picks []pick.Pick
}

func NewPickRepository(picks []pick.Pick) *PickRepository {
	out := make([]pick.Pick, len(picks))
	copy(out, picks)

	return &PickRepository{picks: out}
}

func (r *PickRepository) ListByUser(_ context.Context, userID string) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pick.Pick, 0, pick.PicksPerTournament)
	for _, item := range r.picks {
		if item.UserID == userID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PickRepository) ListByUserAndTournament(_ context.Context, userID, tournamentID string) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pick.Pick, 0, pick.PicksPerTournament)
	for _, item := range r.picks {
		if item.UserID == userID && item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PickRepository) ListByTournament(_ context.Context, tournamentID string) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pick.Pick, 0, len(r.picks))
	for _, item := range r.picks {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PickRepository) ListAll(_ context.Context) ([]pick.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pick.Pick, len(r.picks))
	copy(out, r.picks)

	return out, nil
}

func (r *PickRepository) ReplaceForTournament(_ context.Context, userID, tournamentID string, golferIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.picks[:0]
	for _, item := range r.picks {
		if item.UserID == userID && item.TournamentID == tournamentID {
			continue
		}
		kept = append(kept, item)
	}
	for _, golferID := range golferIDs {
		kept = append(kept, pick.Pick{
			UserID:       userID,
			TournamentID: tournamentID,
			GolferID:     golferID,
		})
	}
	r.picks = kept

	return nil
}
