package tournament

import "time"

// ComputeSubmissionWindow derives the pick window from a tournament's
// first-round start date: the window opens on the Sunday before the start
// and closes Wednesday 23:59:59 UTC of tournament week (rounds run
// Thursday through Sunday).
func ComputeSubmissionWindow(start time.Time) (time.Time, time.Time) {
	start = start.UTC()

	// time.Weekday counts Sunday as 0, so this lands on the most recent Sunday.
	windowStart := start.AddDate(0, 0, -int(start.Weekday()))

	daysUntilThursday := (int(time.Thursday) - int(start.Weekday()) + 7) % 7
	wednesday := start.AddDate(0, 0, daysUntilThursday-1)
	windowEnd := time.Date(wednesday.Year(), wednesday.Month(), wednesday.Day(), 23, 59, 59, 0, time.UTC)

	return windowStart, windowEnd
}
