package httpapi

import (
	"fmt"
	"net/http"

	"github.com/fairwaypool/golf-pickem/external/golfdata"
	"github.com/fairwaypool/golf-pickem/internal/usecase"
)

type upsertEarningsResponse struct {
	TournamentID string `json:"tournamentId"`
	Upserted     int    `json:"upserted"`
}

type sweepTournamentDTO struct {
	TournamentID string `json:"tournamentId"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	Records      int    `json:"records"`
	Message      string `json:"message,omitempty"`
}

type sweepResultDTO struct {
	Checked     int                  `json:"checked"`
	Synced      int                  `json:"synced"`
	Skipped     int                  `json:"skipped"`
	Failed      int                  `json:"failed"`
	Tournaments []sweepTournamentDTO `json:"tournaments"`
}

// LoadEarnings accepts a raw provider earnings document and upserts it
// for the tournament in the path.
func (h *Handler) LoadEarnings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadEarnings")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	raw, err := readRawBody(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	docTournamentID, records, err := golfdata.ParseEarningsDocument(raw)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: earnings document: %v", usecase.ErrInvalidInput, err))
		return
	}
	if docTournamentID != "" && docTournamentID != tournamentID {
		writeError(ctx, w, fmt.Errorf("%w: document is for tournament %s, not %s",
			usecase.ErrInvalidInput, docTournamentID, tournamentID))
		return
	}

	upserted, err := h.earningsService.UpsertEarnings(ctx, tournamentID, records)
	if err != nil {
		h.logger.WarnContext(ctx, "load earnings failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, upsertEarningsResponse{
		TournamentID: tournamentID,
		Upserted:     upserted,
	})
}

func (h *Handler) RunSyncEarningsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncEarningsJob")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	upserted, err := h.earningsService.SyncTournament(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "sync earnings job failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, upsertEarningsResponse{
		TournamentID: tournamentID,
		Upserted:     upserted,
	})
}

func (h *Handler) RunSweepEarningsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSweepEarningsJob")
	defer span.End()

	sweep, err := h.earningsService.SweepRecent(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "sweep earnings job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	tournaments := make([]sweepTournamentDTO, 0, len(sweep.Tournaments))
	for _, t := range sweep.Tournaments {
		tournaments = append(tournaments, sweepTournamentDTO{
			TournamentID: t.TournamentID,
			Name:         t.Name,
			Status:       string(t.Status),
			Records:      t.Records,
			Message:      t.Message,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, sweepResultDTO{
		Checked:     sweep.Checked,
		Synced:      sweep.Synced,
		Skipped:     sweep.Skipped,
		Failed:      sweep.Failed,
		Tournaments: tournaments,
	})
}
