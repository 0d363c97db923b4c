package memory

import (
	"time"

	"github.com/fairwaypool/golf-pickem/internal/domain/golfer"
	"github.com/fairwaypool/golf-pickem/internal/domain/tournament"
)

// Seed data for DB-less dev runs: the five 2026 majors and a small slice
// of the tour roster so picks can be submitted immediately.

const (
	TournamentIDPlayers   = "011"
	TournamentIDMasters   = "014"
	TournamentIDPGA       = "033"
	TournamentIDUSOpen    = "026"
	TournamentIDOpenChamp = "100"
	seedYear              = 2026
)

func SeedTournaments() []tournament.Tournament {
	entries := []struct {
		id    string
		name  string
		start time.Time
	}{
		{TournamentIDPlayers, "THE PLAYERS Championship", time.Date(seedYear, time.March, 12, 0, 0, 0, 0, time.UTC)},
		{TournamentIDMasters, "Masters Tournament", time.Date(seedYear, time.April, 9, 0, 0, 0, 0, time.UTC)},
		{TournamentIDPGA, "PGA Championship", time.Date(seedYear, time.May, 14, 0, 0, 0, 0, time.UTC)},
		{TournamentIDUSOpen, "U.S. Open", time.Date(seedYear, time.June, 18, 0, 0, 0, 0, time.UTC)},
		{TournamentIDOpenChamp, "The Open Championship", time.Date(seedYear, time.July, 16, 0, 0, 0, 0, time.UTC)},
	}

	out := make([]tournament.Tournament, 0, len(entries))
	for _, entry := range entries {
		start, end := tournament.ComputeSubmissionWindow(entry.start)
		out = append(out, tournament.Tournament{
			ID:              entry.id,
			Name:            entry.name,
			Year:            seedYear,
			SubmissionStart: start,
			SubmissionEnd:   end,
		})
	}

	return out
}

func SeedGolfers() []golfer.Golfer {
	return []golfer.Golfer{
		{ID: "46046", Name: "Scottie Scheffler"},
		{ID: "52955", Name: "Rory McIlroy"},
		{ID: "47483", Name: "Xander Schauffele"},
		{ID: "50525", Name: "Collin Morikawa"},
		{ID: "39971", Name: "Ludvig Aberg"},
		{ID: "48081", Name: "Viktor Hovland"},
		{ID: "34046", Name: "Jordan Spieth"},
		{ID: "45486", Name: "Joaquin Niemann"},
		{ID: "52215", Name: "Wyndham Clark"},
		{ID: "46717", Name: "Justin Thomas"},
		{ID: "33448", Name: "Justin Rose"},
		{ID: "30925", Name: "Dustin Johnson"},
	}
}
