package tournament

import (
	"fmt"
	"time"
)

// Tournament is one schedule entry the pool tracks. SubmissionStart and
// SubmissionEnd are UTC instants; both are stored but only the end bound
// gates pick submission.
type Tournament struct {
	ID              string
	Name            string
	Year            int
	SubmissionStart time.Time
	SubmissionEnd   time.Time
}

func (t Tournament) ValidateBasic() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.Year <= 0 {
		return fmt.Errorf("tournament year must be greater than zero")
	}
	if t.SubmissionStart.IsZero() || t.SubmissionEnd.IsZero() {
		return fmt.Errorf("submission window is required")
	}
	if t.SubmissionEnd.Before(t.SubmissionStart) {
		return fmt.Errorf("submission end must not precede submission start")
	}

	return nil
}

// AcceptsPicksAt reports whether picks may still be submitted at now.
// Only the deadline is checked: a tournament is pickable any time up to
// SubmissionEnd, even before SubmissionStart.
func (t Tournament) AcceptsPicksAt(now time.Time) bool {
	return !now.UTC().After(t.SubmissionEnd)
}

// WindowOpenAt reports whether now falls inside the full submission
// window. Drives the available-tournaments listing.
func (t Tournament) WindowOpenAt(now time.Time) bool {
	instant := now.UTC()
	return !instant.Before(t.SubmissionStart) && !instant.After(t.SubmissionEnd)
}
