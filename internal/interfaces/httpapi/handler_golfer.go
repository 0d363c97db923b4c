package httpapi

import (
	"net/http"

	"github.com/fairwaypool/golf-pickem/internal/domain/golfer"
	"github.com/fairwaypool/golf-pickem/internal/usecase"
)

type addGolferRequest struct {
	ID   string `json:"id" validate:"required,max=64"`
	Name string `json:"name" validate:"required,max=100"`
}

type golferDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) AddGolfer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddGolfer")
	defer span.End()

	var req addGolferRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.golferService.Add(ctx, usecase.AddGolferInput{
		ID:   req.ID,
		Name: req.Name,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add golfer failed", "golfer_id", req.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, golferToDTO(item))
}

func (h *Handler) ListGolfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGolfers")
	defer span.End()

	golfers, err := h.golferService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list golfers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]golferDTO, 0, len(golfers))
	for _, g := range golfers {
		items = append(items, golferToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTournamentField(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournamentField")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	field, err := h.golferService.TournamentField(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "fetch tournament field failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]golferDTO, 0, len(field))
	for _, g := range field {
		items = append(items, golferToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func golferToDTO(v golfer.Golfer) golferDTO {
	return golferDTO{
		ID:   v.ID,
		Name: v.Name,
	}
}
