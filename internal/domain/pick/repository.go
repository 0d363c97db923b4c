package pick

import "context"

// Repository exposes pick persistence operations.
//
// ReplaceForTournament deletes the user's existing picks for the
// tournament and inserts the given golfer ids as the new set, all inside
// one transaction: a partial replacement is never observable.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Pick, error)
	ListByUserAndTournament(ctx context.Context, userID, tournamentID string) ([]Pick, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]Pick, error)
	ListAll(ctx context.Context) ([]Pick, error)
	ReplaceForTournament(ctx context.Context, userID, tournamentID string, golferIDs []string) error
}
