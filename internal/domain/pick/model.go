package pick

// PicksPerTournament is the fixed size of one user's pick set for a single
// tournament; submissions are always complete replacements of this set.
const PicksPerTournament = 3

// Pick is one (user, tournament, golfer) selection.
type Pick struct {
	UserID       string
	TournamentID string
	GolferID     string
}
