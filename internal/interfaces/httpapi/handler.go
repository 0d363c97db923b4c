package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fairwaypool/golf-pickem/internal/platform/logging"
	"github.com/fairwaypool/golf-pickem/internal/usecase"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	userService       *usecase.UserService
	golferService     *usecase.GolferService
	tournamentService *usecase.TournamentService
	pickService       *usecase.PickService
	scoreboardService *usecase.ScoreboardService
	earningsService   *usecase.EarningsService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	userService *usecase.UserService,
	golferService *usecase.GolferService,
	tournamentService *usecase.TournamentService,
	pickService *usecase.PickService,
	scoreboardService *usecase.ScoreboardService,
	earningsService *usecase.EarningsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		userService:       userService,
		golferService:     golferService,
		tournamentService: tournamentService,
		pickService:       pickService,
		scoreboardService: scoreboardService,
		earningsService:   earningsService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
