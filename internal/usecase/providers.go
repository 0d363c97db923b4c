package usecase

import "context"

// EarningsRecord is one golfer's prize money for a tournament as reported
// by the earnings provider.
type EarningsRecord struct {
	GolferID string
	Earnings int64
}

// EarningsProvider fetches official per-tournament prize money.
// The bool result is false when the provider has not published a
// leaderboard for the tournament yet; that is not an error.
type EarningsProvider interface {
	FetchEarnings(ctx context.Context, tournamentID string, year int) ([]EarningsRecord, bool, error)
}

// FieldGolfer is one entrant of a tournament field.
type FieldGolfer struct {
	ID   string
	Name string
}

// RosterProvider fetches the field of a tournament, used to backfill
// golfer names lazily.
type RosterProvider interface {
	FetchField(ctx context.Context, tournamentID string, year int) ([]FieldGolfer, error)
}
