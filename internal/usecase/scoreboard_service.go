package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/fairwaypool/golf-pickem/internal/domain/golfer"
	"github.com/fairwaypool/golf-pickem/internal/domain/pick"
	"github.com/fairwaypool/golf-pickem/internal/domain/result"
	"github.com/fairwaypool/golf-pickem/internal/domain/tournament"
	"github.com/fairwaypool/golf-pickem/internal/domain/user"
)

// ScoreboardRow is one user's season total. Score is the sum of earnings
// over the user's picks joined to published results; a pick without a
// result contributes zero.
type ScoreboardRow struct {
	UserID      string
	DisplayName string
	Email       string
	Score       int64
}

// PickLine is one pick inside a tournament breakdown.
type PickLine struct {
	GolferID   string
	GolferName string
	Earnings   int64
}

// TournamentUserScore is one user's picks and total within a single
// tournament.
type TournamentUserScore struct {
	UserID        string
	DisplayName   string
	Picks         []PickLine
	TotalEarnings int64
}

// TournamentScores is the per-tournament section of the detailed
// scoreboard.
type TournamentScores struct {
	TournamentID string
	Name         string
	UserScores   []TournamentUserScore
}

// OverallRow is one user's entry in the overall leaderboard.
type OverallRow struct {
	UserID      string
	DisplayName string
	TotalScore  int64
}

// DetailedScoreboard is the full tournament-by-tournament breakdown plus
// the season leaderboard.
type DetailedScoreboard struct {
	Tournaments        []TournamentScores
	OverallLeaderboard []OverallRow
}

// ScoreboardService computes standings on demand from the stored picks
// and results. Nothing is cached; every call reflects the latest writes.
type ScoreboardService struct {
	userRepo       user.Repository
	golferRepo     golfer.Repository
	tournamentRepo tournament.Repository
	pickRepo       pick.Repository
	resultRepo     result.Repository
}

func NewScoreboardService(
	userRepo user.Repository,
	golferRepo golfer.Repository,
	tournamentRepo tournament.Repository,
	pickRepo pick.Repository,
	resultRepo result.Repository,
) *ScoreboardService {
	return &ScoreboardService{
		userRepo:       userRepo,
		golferRepo:     golferRepo,
		tournamentRepo: tournamentRepo,
		pickRepo:       pickRepo,
		resultRepo:     resultRepo,
	}
}

type resultKey struct {
	tournamentID string
	golferID     string
}

// Scoreboard returns every registered user exactly once, sorted by score
// descending with user id ascending as the tie-break.
func (s *ScoreboardService) Scoreboard(ctx context.Context) ([]ScoreboardRow, error) {
	ctx, span := startUsecaseSpan(ctx, "ScoreboardService.Scoreboard")
	defer span.End()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	picks, err := s.pickRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	earnings, err := s.earningsIndex(ctx)
	if err != nil {
		return nil, err
	}

	scoreByUser := make(map[string]int64, len(users))
	for _, p := range picks {
		scoreByUser[p.UserID] += earnings[resultKey{p.TournamentID, p.GolferID}]
	}

	rows := make([]ScoreboardRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, ScoreboardRow{
			UserID:      u.ID,
			DisplayName: u.DisplayName,
			Email:       u.Email,
			Score:       scoreByUser[u.ID],
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].UserID < rows[j].UserID
	})

	return rows, nil
}

// DetailedScoreboard breaks standings down per tournament. Tournaments
// with at least one pick appear newest deadline first; within each,
// users are sorted by tournament total descending (user id ascending on
// ties). The overall leaderboard counts only positive earnings but lists
// every registered user.
func (s *ScoreboardService) DetailedScoreboard(ctx context.Context) (DetailedScoreboard, error) {
	ctx, span := startUsecaseSpan(ctx, "ScoreboardService.DetailedScoreboard")
	defer span.End()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return DetailedScoreboard{}, fmt.Errorf("list users: %w", err)
	}
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return DetailedScoreboard{}, fmt.Errorf("list tournaments: %w", err)
	}
	picks, err := s.pickRepo.ListAll(ctx)
	if err != nil {
		return DetailedScoreboard{}, fmt.Errorf("list picks: %w", err)
	}
	golfers, err := s.golferRepo.List(ctx)
	if err != nil {
		return DetailedScoreboard{}, fmt.Errorf("list golfers: %w", err)
	}
	earnings, err := s.earningsIndex(ctx)
	if err != nil {
		return DetailedScoreboard{}, err
	}

	userByID := make(map[string]user.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}
	golferNameByID := make(map[string]string, len(golfers))
	for _, g := range golfers {
		golferNameByID[g.ID] = g.Name
	}
	picksByTournament := make(map[string][]pick.Pick)
	for _, p := range picks {
		picksByTournament[p.TournamentID] = append(picksByTournament[p.TournamentID], p)
	}

	withPicks := make([]tournament.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if len(picksByTournament[t.ID]) > 0 {
			withPicks = append(withPicks, t)
		}
	}
	sort.Slice(withPicks, func(i, j int) bool {
		if !withPicks[i].SubmissionEnd.Equal(withPicks[j].SubmissionEnd) {
			return withPicks[i].SubmissionEnd.After(withPicks[j].SubmissionEnd)
		}
		return withPicks[i].ID < withPicks[j].ID
	})

	overallByUser := make(map[string]int64)
	sections := make([]TournamentScores, 0, len(withPicks))
	for _, t := range withPicks {
		byUser := make(map[string]*TournamentUserScore)
		for _, p := range picksByTournament[t.ID] {
			score, ok := byUser[p.UserID]
			if !ok {
				display := p.UserID
				if u, known := userByID[p.UserID]; known {
					display = u.DisplayName
				}
				score = &TournamentUserScore{UserID: p.UserID, DisplayName: display}
				byUser[p.UserID] = score
			}

			amount := earnings[resultKey{t.ID, p.GolferID}]
			name := golferNameByID[p.GolferID]
			if name == "" {
				name = p.GolferID
			}
			score.Picks = append(score.Picks, PickLine{
				GolferID:   p.GolferID,
				GolferName: name,
				Earnings:   amount,
			})
			score.TotalEarnings += amount

			if amount > 0 {
				overallByUser[p.UserID] += amount
			}
		}

		userScores := make([]TournamentUserScore, 0, len(byUser))
		for _, score := range byUser {
			sort.Slice(score.Picks, func(i, j int) bool { return score.Picks[i].GolferID < score.Picks[j].GolferID })
			userScores = append(userScores, *score)
		}
		sort.Slice(userScores, func(i, j int) bool {
			if userScores[i].TotalEarnings != userScores[j].TotalEarnings {
				return userScores[i].TotalEarnings > userScores[j].TotalEarnings
			}
			return userScores[i].UserID < userScores[j].UserID
		})

		sections = append(sections, TournamentScores{
			TournamentID: t.ID,
			Name:         t.Name,
			UserScores:   userScores,
		})
	}

	leaderboard := make([]OverallRow, 0, len(users))
	for _, u := range users {
		leaderboard = append(leaderboard, OverallRow{
			UserID:      u.ID,
			DisplayName: u.DisplayName,
			TotalScore:  overallByUser[u.ID],
		})
	}
	sort.Slice(leaderboard, func(i, j int) bool {
		if leaderboard[i].TotalScore != leaderboard[j].TotalScore {
			return leaderboard[i].TotalScore > leaderboard[j].TotalScore
		}
		return leaderboard[i].UserID < leaderboard[j].UserID
	})

	return DetailedScoreboard{
		Tournaments:        sections,
		OverallLeaderboard: leaderboard,
	}, nil
}

func (s *ScoreboardService) earningsIndex(ctx context.Context) (map[resultKey]int64, error) {
	results, err := s.resultRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	index := make(map[resultKey]int64, len(results))
	for _, r := range results {
		index[resultKey{r.TournamentID, r.GolferID}] = r.Earnings
	}

	return index, nil
}
