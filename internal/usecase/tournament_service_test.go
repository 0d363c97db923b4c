package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/fairwaypool/golf-pickem/internal/infrastructure/repository/memory"
)

func TestTournamentService_Create_RejectsDuplicateID(t *testing.T) {
	service := NewTournamentService(memory.NewTournamentRepository(memory.SeedTournaments()))

	_, err := service.Create(t.Context(), CreateTournamentInput{
		ID:              memory.TournamentIDMasters,
		Name:            "Masters Tournament",
		Year:            2026,
		SubmissionStart: time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		SubmissionEnd:   time.Date(2026, 4, 8, 23, 59, 59, 0, time.UTC),
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate tournament id, got %v", err)
	}
}

func TestTournamentService_Create_RejectsInvertedWindow(t *testing.T) {
	service := NewTournamentService(memory.NewTournamentRepository(nil))

	_, err := service.Create(t.Context(), CreateTournamentInput{
		ID:              "200",
		Name:            "Backwards Invitational",
		Year:            2026,
		SubmissionStart: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		SubmissionEnd:   time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted window, got %v", err)
	}
}

func TestTournamentService_ListOpen_ChecksBothBounds(t *testing.T) {
	service := NewTournamentService(memory.NewTournamentRepository(memory.SeedTournaments()))

	// Inside the Players window only.
	service.now = func() time.Time { return time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC) }
	open, err := service.ListOpen(t.Context())
	if err != nil {
		t.Fatalf("list open failed: %v", err)
	}
	if len(open) != 1 || open[0].ID != memory.TournamentIDPlayers {
		t.Fatalf("expected only the players window open, got %+v", open)
	}

	// Between windows: nothing open even though later deadlines still
	// accept picks.
	service.now = func() time.Time { return time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC) }
	open, err = service.ListOpen(t.Context())
	if err != nil {
		t.Fatalf("list open failed: %v", err)
	}
	if len(open) != 0 {
		t.Fatalf("expected no open windows between tournaments, got %+v", open)
	}
}

func TestTournamentService_LoadSchedule_FiltersAndComputesWindows(t *testing.T) {
	repo := memory.NewTournamentRepository(nil)
	service := NewTournamentService(repo)

	entries := []ScheduleEntry{
		{TournamentID: "014", Name: "Masters Tournament", Start: time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)},
		{TournamentID: "007", Name: "Valero Texas Open", Start: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)},
		{TournamentID: "026", Name: "U.S. Open", Start: time.Date(2026, 6, 18, 0, 0, 0, 0, time.UTC)},
		{TournamentID: "", Name: "The Open Championship", Start: time.Date(2026, 7, 16, 0, 0, 0, 0, time.UTC)},
	}

	loaded, err := service.LoadSchedule(t.Context(), 2026, entries)
	if err != nil {
		t.Fatalf("load schedule failed: %v", err)
	}
	if loaded != 2 {
		t.Fatalf("expected 2 tournaments loaded, got %d", loaded)
	}

	masters, exists, err := repo.GetByID(t.Context(), "014")
	if err != nil || !exists {
		t.Fatalf("expected masters stored, exists=%v err=%v", exists, err)
	}
	if !masters.SubmissionStart.Equal(time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected masters window start on the Sunday before, got %v", masters.SubmissionStart)
	}
	if !masters.SubmissionEnd.Equal(time.Date(2026, 4, 8, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("expected masters window end Wednesday 23:59:59, got %v", masters.SubmissionEnd)
	}

	if _, exists, _ := repo.GetByID(t.Context(), "007"); exists {
		t.Fatal("expected non-major to be filtered out")
	}

	// Reload skips what is already stored.
	reloaded, err := service.LoadSchedule(t.Context(), 2026, entries)
	if err != nil {
		t.Fatalf("second load schedule failed: %v", err)
	}
	if reloaded != 0 {
		t.Fatalf("expected 0 tournaments on reload, got %d", reloaded)
	}
}
