package usecase

import (
	"errors"
	"testing"

	"github.com/fairwaypool/golf-pickem/internal/infrastructure/repository/memory"
)

func TestUserService_Register_CreateThenNoop(t *testing.T) {
	service := NewUserService(memory.NewUserRepository(nil))

	created, isNew, err := service.Register(t.Context(), RegisterUserInput{
		ID:          "firebase-uid-1",
		DisplayName: "Arnold",
		Email:       "arnold@example.com",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !isNew {
		t.Fatal("expected first registration to create the user")
	}

	again, isNew, err := service.Register(t.Context(), RegisterUserInput{
		ID:          "firebase-uid-1",
		DisplayName: "Arnold Renamed",
		Email:       "other@example.com",
	})
	if err != nil {
		t.Fatalf("re-registration failed: %v", err)
	}
	if isNew {
		t.Fatal("expected re-registration to be a no-op")
	}
	if again.DisplayName != created.DisplayName || again.Email != created.Email {
		t.Fatalf("expected stored record unchanged on re-registration, got %+v", again)
	}
}

func TestUserService_Register_RequiresAllFields(t *testing.T) {
	service := NewUserService(memory.NewUserRepository(nil))

	_, _, err := service.Register(t.Context(), RegisterUserInput{
		ID:    "firebase-uid-1",
		Email: "arnold@example.com",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing display name, got %v", err)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	service := NewUserService(memory.NewUserRepository(nil))

	_, err := service.GetByID(t.Context(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
