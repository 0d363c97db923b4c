package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fairwaypool/golf-pickem/internal/domain/tournament"
)

type CreateTournamentInput struct {
	ID              string
	Name            string
	Year            int
	SubmissionStart time.Time
	SubmissionEnd   time.Time
}

// ScheduleEntry is one tournament row of a provider schedule document,
// already decoded from the wire format.
type ScheduleEntry struct {
	TournamentID string
	Name         string
	Start        time.Time
}

// trackedMajors are the events the pool follows. Schedule loads drop
// everything else. Matching is a case-insensitive substring check so
// provider name variants ("The Masters Tournament") still land.
var trackedMajors = []string{
	"THE PLAYERS Championship",
	"Masters Tournament",
	"PGA Championship",
	"U.S. Open",
	"The Open Championship",
}

// TournamentService manages the schedule the pool picks against.
type TournamentService struct {
	tournamentRepo tournament.Repository
	now            func() time.Time
}

func NewTournamentService(tournamentRepo tournament.Repository) *TournamentService {
	return &TournamentService{
		tournamentRepo: tournamentRepo,
		now:            time.Now,
	}
}

func (s *TournamentService) Create(ctx context.Context, input CreateTournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "TournamentService.Create")
	defer span.End()

	candidate := tournament.Tournament{
		ID:              strings.TrimSpace(input.ID),
		Name:            strings.TrimSpace(input.Name),
		Year:            input.Year,
		SubmissionStart: input.SubmissionStart.UTC(),
		SubmissionEnd:   input.SubmissionEnd.UTC(),
	}
	if err := candidate.ValidateBasic(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.tournamentRepo.GetByID(ctx, candidate.ID); err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament by id: %w", err)
	} else if exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament %s already exists", ErrConflict, candidate.ID)
	}

	if err := s.tournamentRepo.Create(ctx, candidate); err != nil {
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}

	return candidate, nil
}

func (s *TournamentService) GetByID(ctx context.Context, id string) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "TournamentService.GetByID")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	found, exists, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament by id: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament %s", ErrNotFound, id)
	}

	return found, nil
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "TournamentService.List")
	defer span.End()

	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	return tournaments, nil
}

// ListOpen returns tournaments whose submission window contains the
// current instant, both bounds inclusive.
func (s *TournamentService) ListOpen(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "TournamentService.ListOpen")
	defer span.End()

	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	now := s.now()
	open := make([]tournament.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if t.WindowOpenAt(now) {
			open = append(open, t)
		}
	}

	return open, nil
}

// LoadSchedule filters a season schedule down to the tracked majors,
// derives each submission window from the first-round start date and
// inserts the tournaments the store does not know yet. Entries without
// an id and already-known tournaments are skipped silently. Returns the
// number of tournaments inserted.
func (s *TournamentService) LoadSchedule(ctx context.Context, year int, entries []ScheduleEntry) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "TournamentService.LoadSchedule")
	defer span.End()

	if year <= 0 {
		return 0, fmt.Errorf("%w: schedule year must be greater than zero", ErrInvalidInput)
	}

	loaded := 0
	for _, entry := range entries {
		entry.TournamentID = strings.TrimSpace(entry.TournamentID)
		entry.Name = strings.TrimSpace(entry.Name)
		if entry.TournamentID == "" || entry.Start.IsZero() {
			continue
		}
		if !isTrackedMajor(entry.Name) {
			continue
		}

		if _, exists, err := s.tournamentRepo.GetByID(ctx, entry.TournamentID); err != nil {
			return loaded, fmt.Errorf("get tournament by id: %w", err)
		} else if exists {
			continue
		}

		windowStart, windowEnd := tournament.ComputeSubmissionWindow(entry.Start)
		item := tournament.Tournament{
			ID:              entry.TournamentID,
			Name:            entry.Name,
			Year:            year,
			SubmissionStart: windowStart,
			SubmissionEnd:   windowEnd,
		}
		if err := s.tournamentRepo.Create(ctx, item); err != nil {
			return loaded, fmt.Errorf("create tournament %s: %w", item.ID, err)
		}
		loaded++
	}

	return loaded, nil
}

func isTrackedMajor(name string) bool {
	lowered := strings.ToLower(name)
	for _, major := range trackedMajors {
		if strings.Contains(lowered, strings.ToLower(major)) {
			return true
		}
	}
	return false
}
