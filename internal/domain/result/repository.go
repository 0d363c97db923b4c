package result

import "context"

// Repository exposes tournament result persistence operations.
//
// UpsertBatch applies the whole batch in one transaction, keyed on
// (tournament id, golfer id): existing rows have their earnings
// overwritten, missing rows are inserted. A mid-batch failure leaves the
// store untouched.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string) ([]Result, error)
	ListAll(ctx context.Context) ([]Result, error)
	HasAnyForTournament(ctx context.Context, tournamentID string) (bool, error)
	UpsertBatch(ctx context.Context, items []Result) error
}
