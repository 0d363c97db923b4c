package httpapi

import (
	"net/http"

	"github.com/fairwaypool/golf-pickem/internal/usecase"
)

type scoreboardRowDTO struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Score       int64  `json:"score"`
}

type pickLineDTO struct {
	GolferID   string `json:"golferId"`
	GolferName string `json:"golferName"`
	Earnings   int64  `json:"earnings"`
}

type tournamentUserScoreDTO struct {
	UserID        string        `json:"userId"`
	DisplayName   string        `json:"displayName"`
	Picks         []pickLineDTO `json:"picks"`
	TotalEarnings int64         `json:"totalEarnings"`
}

type tournamentScoresDTO struct {
	TournamentID string                   `json:"tournamentId"`
	Name         string                   `json:"name"`
	UserScores   []tournamentUserScoreDTO `json:"userScores"`
}

type overallRowDTO struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	TotalScore  int64  `json:"totalScore"`
}

type detailedScoreboardDTO struct {
	Tournaments        []tournamentScoresDTO `json:"tournaments"`
	OverallLeaderboard []overallRowDTO       `json:"overallLeaderboard"`
}

func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoreboard")
	defer span.End()

	rows, err := h.scoreboardService.Scoreboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "scoreboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scoreboardRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, scoreboardRowDTO{
			UserID:      row.UserID,
			DisplayName: row.DisplayName,
			Email:       row.Email,
			Score:       row.Score,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDetailedScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDetailedScoreboard")
	defer span.End()

	board, err := h.scoreboardService.DetailedScoreboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "detailed scoreboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, detailedScoreboardToDTO(board))
}

func detailedScoreboardToDTO(board usecase.DetailedScoreboard) detailedScoreboardDTO {
	tournaments := make([]tournamentScoresDTO, 0, len(board.Tournaments))
	for _, t := range board.Tournaments {
		userScores := make([]tournamentUserScoreDTO, 0, len(t.UserScores))
		for _, us := range t.UserScores {
			picks := make([]pickLineDTO, 0, len(us.Picks))
			for _, p := range us.Picks {
				picks = append(picks, pickLineDTO{
					GolferID:   p.GolferID,
					GolferName: p.GolferName,
					Earnings:   p.Earnings,
				})
			}
			userScores = append(userScores, tournamentUserScoreDTO{
				UserID:        us.UserID,
				DisplayName:   us.DisplayName,
				Picks:         picks,
				TotalEarnings: us.TotalEarnings,
			})
		}
		tournaments = append(tournaments, tournamentScoresDTO{
			TournamentID: t.TournamentID,
			Name:         t.Name,
			UserScores:   userScores,
		})
	}

	overall := make([]overallRowDTO, 0, len(board.OverallLeaderboard))
	for _, row := range board.OverallLeaderboard {
		overall = append(overall, overallRowDTO{
			UserID:      row.UserID,
			DisplayName: row.DisplayName,
			TotalScore:  row.TotalScore,
		})
	}

	return detailedScoreboardDTO{
		Tournaments:        tournaments,
		OverallLeaderboard: overall,
	}
}
