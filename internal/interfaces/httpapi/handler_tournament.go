package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fairwaypool/golf-pickem/external/golfdata"
	"github.com/fairwaypool/golf-pickem/internal/domain/tournament"
	"github.com/fairwaypool/golf-pickem/internal/usecase"
)

type createTournamentRequest struct {
	ID              string `json:"id" validate:"required,max=64"`
	Name            string `json:"name" validate:"required,max=200"`
	Year            int    `json:"year" validate:"required,min=1900,max=2200"`
	SubmissionStart string `json:"submissionStart" validate:"required"`
	SubmissionEnd   string `json:"submissionEnd" validate:"required"`
}

type tournamentDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Year            int    `json:"year"`
	SubmissionStart string `json:"submissionStart"`
	SubmissionEnd   string `json:"submissionEnd"`
}

type loadScheduleResponse struct {
	Year   int `json:"year"`
	Loaded int `json:"loaded"`
}

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournament")
	defer span.End()

	var req createTournamentRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	start, err := parseInstant(req.SubmissionStart)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: submissionStart: %v", usecase.ErrInvalidInput, err))
		return
	}
	end, err := parseInstant(req.SubmissionEnd)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: submissionEnd: %v", usecase.ErrInvalidInput, err))
		return
	}

	item, err := h.tournamentService.Create(ctx, usecase.CreateTournamentInput{
		ID:              req.ID,
		Name:            req.Name,
		Year:            req.Year,
		SubmissionStart: start,
		SubmissionEnd:   end,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament failed", "tournament_id", req.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tournamentToDTO(item))
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	tournaments, err := h.tournamentService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentsToDTOs(tournaments))
}

func (h *Handler) ListOpenTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOpenTournaments")
	defer span.End()

	tournaments, err := h.tournamentService.ListOpen(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list open tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentsToDTOs(tournaments))
}

func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournament")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	item, err := h.tournamentService.GetByID(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentToDTO(item))
}

// LoadSchedule accepts a raw provider schedule document, keeps the five
// tracked majors and inserts the ones not stored yet.
func (h *Handler) LoadSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadSchedule")
	defer span.End()

	raw, err := readRawBody(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	year, entries, err := golfdata.ParseScheduleDocument(raw)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: schedule document: %v", usecase.ErrInvalidInput, err))
		return
	}

	loaded, err := h.tournamentService.LoadSchedule(ctx, year, entries)
	if err != nil {
		h.logger.WarnContext(ctx, "load schedule failed", "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, loadScheduleResponse{
		Year:   year,
		Loaded: loaded,
	})
}

func parseInstant(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}

	return t.UTC(), nil
}

func tournamentToDTO(v tournament.Tournament) tournamentDTO {
	return tournamentDTO{
		ID:              v.ID,
		Name:            v.Name,
		Year:            v.Year,
		SubmissionStart: v.SubmissionStart.UTC().Format(time.RFC3339),
		SubmissionEnd:   v.SubmissionEnd.UTC().Format(time.RFC3339),
	}
}

func tournamentsToDTOs(items []tournament.Tournament) []tournamentDTO {
	out := make([]tournamentDTO, 0, len(items))
	for _, t := range items {
		out = append(out, tournamentToDTO(t))
	}

	return out
}
