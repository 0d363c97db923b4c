package result

import "fmt"

// Result is the prize money one golfer won in one tournament, as reported
// by the earnings provider. Absence of a row means "not yet available",
// not zero.
type Result struct {
	TournamentID string
	GolferID     string
	Earnings     int64
}

func (r Result) ValidateBasic() error {
	if r.TournamentID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if r.GolferID == "" {
		return fmt.Errorf("golfer id is required")
	}
	if r.Earnings < 0 {
		return fmt.Errorf("earnings must not be negative")
	}

	return nil
}
