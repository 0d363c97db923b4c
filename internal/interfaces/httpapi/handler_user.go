package httpapi

import (
	"net/http"

	"github.com/fairwaypool/golf-pickem/internal/domain/user"
	"github.com/fairwaypool/golf-pickem/internal/usecase"
)

type registerUserRequest struct {
	ID          string `json:"id" validate:"required,max=128"`
	DisplayName string `json:"displayName" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email,max=254"`
}

type userDTO struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterUser")
	defer span.End()

	var req registerUserRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, created, err := h.userService.Register(ctx, usecase.RegisterUserInput{
		ID:          req.ID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register user failed", "user_id", req.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusCreated
	if !created {
		// Re-registration with a known id is a no-op on purpose.
		status = http.StatusOK
	}

	writeSuccess(ctx, w, status, userToDTO(item))
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUsers")
	defer span.End()

	users, err := h.userService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list users failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]userDTO, 0, len(users))
	for _, u := range users {
		items = append(items, userToDTO(u))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUser")
	defer span.End()

	userID := r.PathValue("userID")
	item, err := h.userService.GetByID(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get user failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(item))
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:          v.ID,
		DisplayName: v.DisplayName,
		Email:       v.Email,
	}
}
