package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fairwaypool/golf-pickem/internal/domain/golfer"
	"github.com/fairwaypool/golf-pickem/internal/infrastructure/repository/memory"
)

type fakeRosterProvider struct {
	fields map[string][]FieldGolfer
	err    error
}

func (p *fakeRosterProvider) FetchField(_ context.Context, tournamentID string, _ int) ([]FieldGolfer, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.fields[tournamentID], nil
}

func TestGolferService_Add_RejectsDuplicateID(t *testing.T) {
	service := NewGolferService(
		memory.NewGolferRepository(memory.SeedGolfers()),
		memory.NewTournamentRepository(nil),
		nil,
	)

	_, err := service.Add(t.Context(), AddGolferInput{ID: "46046", Name: "Scottie Scheffler"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate golfer, got %v", err)
	}

	added, err := service.Add(t.Context(), AddGolferInput{ID: "99999", Name: "New Qualifier"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if added.ID != "99999" {
		t.Fatalf("expected created golfer, got %+v", added)
	}
}

func TestGolferService_TournamentField_LazilyCreatesGolfers(t *testing.T) {
	golferRepo := memory.NewGolferRepository(memory.SeedGolfers())
	provider := &fakeRosterProvider{
		fields: map[string][]FieldGolfer{
			memory.TournamentIDMasters: {
				{ID: "46046", Name: "Scottie Scheffler"},
				{ID: "88888", Name: "Amateur Invitee"},
				{ID: "", Name: "No ID"},
			},
		},
	}
	service := NewGolferService(
		golferRepo,
		memory.NewTournamentRepository(memory.SeedTournaments()),
		provider,
	)

	field, err := service.TournamentField(t.Context(), memory.TournamentIDMasters)
	if err != nil {
		t.Fatalf("tournament field failed: %v", err)
	}
	if len(field) != 2 {
		t.Fatalf("expected 2 field entrants after dropping the empty id, got %d", len(field))
	}
	if field[0].Name != "Amateur Invitee" {
		t.Fatalf("expected field sorted by name, got %+v", field)
	}

	if _, exists, _ := golferRepo.GetByID(t.Context(), "88888"); !exists {
		t.Fatal("expected unknown field entrant to be created")
	}
}

func TestGolferService_TournamentField_BackfillsPlaceholderNames(t *testing.T) {
	golferRepo := memory.NewGolferRepository(nil)
	// A bare pick left this golfer with the id as its name.
	if err := golferRepo.Create(t.Context(), golfer.Golfer{ID: "46046", Name: "46046"}); err != nil {
		t.Fatalf("seed placeholder golfer: %v", err)
	}

	provider := &fakeRosterProvider{
		fields: map[string][]FieldGolfer{
			memory.TournamentIDMasters: {
				{ID: "46046", Name: "Scottie Scheffler"},
			},
		},
	}
	service := NewGolferService(
		golferRepo,
		memory.NewTournamentRepository(memory.SeedTournaments()),
		provider,
	)

	if _, err := service.TournamentField(t.Context(), memory.TournamentIDMasters); err != nil {
		t.Fatalf("tournament field failed: %v", err)
	}

	stored, exists, err := golferRepo.GetByID(t.Context(), "46046")
	if err != nil || !exists {
		t.Fatalf("expected golfer to remain in store (exists=%t err=%v)", exists, err)
	}
	if stored.Name != "Scottie Scheffler" {
		t.Fatalf("expected placeholder name to be backfilled, got %q", stored.Name)
	}
}

func TestGolferService_TournamentField_UnknownTournament(t *testing.T) {
	service := NewGolferService(
		memory.NewGolferRepository(nil),
		memory.NewTournamentRepository(nil),
		&fakeRosterProvider{},
	)

	_, err := service.TournamentField(t.Context(), "no-such-tournament")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGolferService_TournamentField_ProviderFailure(t *testing.T) {
	service := NewGolferService(
		memory.NewGolferRepository(nil),
		memory.NewTournamentRepository(memory.SeedTournaments()),
		&fakeRosterProvider{err: errors.New("upstream boom")},
	)

	_, err := service.TournamentField(t.Context(), memory.TournamentIDMasters)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
