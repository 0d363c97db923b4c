package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fairwaypool/golf-pickem/internal/domain/user"
)

type RegisterUserInput struct {
	ID          string
	DisplayName string
	Email       string
}

// UserService manages pool membership. Registration is keyed on the
// upstream identity id, so registering twice is a no-op rather than a
// failure.
type UserService struct {
	userRepo user.Repository
	now      func() time.Time
}

func NewUserService(userRepo user.Repository) *UserService {
	return &UserService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Register creates the user when the id is unseen and returns the stored
// record. The bool result reports whether a new user was created.
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (user.User, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "UserService.Register")
	defer span.End()

	input.ID = strings.TrimSpace(input.ID)
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	input.Email = strings.TrimSpace(input.Email)

	candidate := user.User{
		ID:          input.ID,
		DisplayName: input.DisplayName,
		Email:       input.Email,
	}
	if err := candidate.ValidateBasic(); err != nil {
		return user.User{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, exists, err := s.userRepo.GetByID(ctx, candidate.ID)
	if err != nil {
		return user.User{}, false, fmt.Errorf("get user by id: %w", err)
	}
	if exists {
		return existing, false, nil
	}

	if err := s.userRepo.Create(ctx, candidate); err != nil {
		return user.User{}, false, fmt.Errorf("create user: %w", err)
	}

	return candidate, true, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "UserService.GetByID")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	found, exists, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by id: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}

	return found, nil
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "UserService.List")
	defer span.End()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}
