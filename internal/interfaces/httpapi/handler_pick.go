package httpapi

import (
	"net/http"

	"github.com/fairwaypool/golf-pickem/internal/usecase"
)

type submitPicksRequest struct {
	UserID       string   `json:"userId" validate:"required,max=128"`
	TournamentID string   `json:"tournamentId" validate:"required,max=64"`
	GolferIDs    []string `json:"golferIds" validate:"required,len=3,dive,required"`
}

type userPickDTO struct {
	GolferID   string `json:"golferId"`
	GolferName string `json:"golferName"`
}

func (h *Handler) SubmitPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPicks")
	defer span.End()

	var req submitPicksRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err := h.pickService.SubmitPicks(ctx, usecase.SubmitPicksInput{
		UserID:       req.UserID,
		TournamentID: req.TournamentID,
		GolferIDs:    req.GolferIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit picks failed",
			"user_id", req.UserID,
			"tournament_id", req.TournamentID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "submitted"})
}

func (h *Handler) GetUserTournamentPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserTournamentPicks")
	defer span.End()

	userID := r.PathValue("userID")
	tournamentID := r.PathValue("tournamentID")
	picks, err := h.pickService.UserTournamentPicks(ctx, userID, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get user picks failed",
			"user_id", userID,
			"tournament_id", tournamentID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	items := make([]userPickDTO, 0, len(picks))
	for _, p := range picks {
		items = append(items, userPickDTO{
			GolferID:   p.GolferID,
			GolferName: p.GolferName,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
