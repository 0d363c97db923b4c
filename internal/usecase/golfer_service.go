package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fairwaypool/golf-pickem/internal/domain/golfer"
	"github.com/fairwaypool/golf-pickem/internal/domain/tournament"
)

type AddGolferInput struct {
	ID   string
	Name string
}

// GolferService maintains the golfer roster. Golfers enter the store
// either by manual add or lazily from a tournament field fetch.
type GolferService struct {
	golferRepo     golfer.Repository
	tournamentRepo tournament.Repository
	roster         RosterProvider
}

func NewGolferService(
	golferRepo golfer.Repository,
	tournamentRepo tournament.Repository,
	roster RosterProvider,
) *GolferService {
	return &GolferService{
		golferRepo:     golferRepo,
		tournamentRepo: tournamentRepo,
		roster:         roster,
	}
}

func (s *GolferService) Add(ctx context.Context, input AddGolferInput) (golfer.Golfer, error) {
	ctx, span := startUsecaseSpan(ctx, "GolferService.Add")
	defer span.End()

	candidate := golfer.Golfer{
		ID:   strings.TrimSpace(input.ID),
		Name: strings.TrimSpace(input.Name),
	}
	if err := candidate.ValidateBasic(); err != nil {
		return golfer.Golfer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.golferRepo.GetByID(ctx, candidate.ID); err != nil {
		return golfer.Golfer{}, fmt.Errorf("get golfer by id: %w", err)
	} else if exists {
		return golfer.Golfer{}, fmt.Errorf("%w: golfer %s already exists", ErrConflict, candidate.ID)
	}

	if err := s.golferRepo.Create(ctx, candidate); err != nil {
		return golfer.Golfer{}, fmt.Errorf("create golfer: %w", err)
	}

	return candidate, nil
}

func (s *GolferService) List(ctx context.Context) ([]golfer.Golfer, error) {
	ctx, span := startUsecaseSpan(ctx, "GolferService.List")
	defer span.End()

	golfers, err := s.golferRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list golfers: %w", err)
	}

	return golfers, nil
}

// TournamentField fetches the field of a tournament from the roster
// provider, creates any golfer the store has not seen before and fills
// in the name of golfers that entered the store as pick placeholders.
// The returned field is sorted by name for stable listings.
func (s *GolferService) TournamentField(ctx context.Context, tournamentID string) ([]golfer.Golfer, error) {
	ctx, span := startUsecaseSpan(ctx, "GolferService.TournamentField")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if s.roster == nil {
		return nil, fmt.Errorf("%w: roster provider is not configured", ErrDependencyUnavailable)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament by id: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: tournament %s", ErrNotFound, tournamentID)
	}

	field, err := s.roster.FetchField(ctx, item.ID, item.Year)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch tournament field: %v", ErrDependencyUnavailable, err)
	}

	golfers := make([]golfer.Golfer, 0, len(field))
	for _, entrant := range field {
		entrant.ID = strings.TrimSpace(entrant.ID)
		entrant.Name = strings.TrimSpace(entrant.Name)
		if entrant.ID == "" || entrant.Name == "" {
			continue
		}

		stored, known, err := s.golferRepo.GetByID(ctx, entrant.ID)
		if err != nil {
			return nil, fmt.Errorf("get golfer by id: %w", err)
		}
		switch {
		case !known:
			if err := s.golferRepo.Create(ctx, golfer.Golfer{ID: entrant.ID, Name: entrant.Name}); err != nil {
				return nil, fmt.Errorf("create golfer %s: %w", entrant.ID, err)
			}
		case stored.Name == stored.ID && entrant.Name != stored.Name:
			// A golfer created from a bare pick keeps the id as its name
			// until the provider supplies the real one.
			if err := s.golferRepo.Update(ctx, golfer.Golfer{ID: entrant.ID, Name: entrant.Name}); err != nil {
				return nil, fmt.Errorf("update golfer %s: %w", entrant.ID, err)
			}
		}

		golfers = append(golfers, golfer.Golfer{ID: entrant.ID, Name: entrant.Name})
	}

	sort.Slice(golfers, func(i, j int) bool { return golfers[i].Name < golfers[j].Name })

	return golfers, nil
}
