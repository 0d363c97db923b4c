package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fairwaypool/golf-pickem/internal/domain/golfer"
	"github.com/fairwaypool/golf-pickem/internal/domain/pick"
	"github.com/fairwaypool/golf-pickem/internal/domain/tournament"
	"github.com/fairwaypool/golf-pickem/internal/domain/user"
)

type SubmitPicksInput struct {
	UserID       string
	TournamentID string
	GolferIDs    []string
}

// UserPick is one stored pick joined with the golfer's name for display.
type UserPick struct {
	GolferID   string
	GolferName string
}

// PickService validates and stores pick submissions. A submission always
// replaces the user's full pick set for the tournament; there is no
// partial edit.
type PickService struct {
	userRepo       user.Repository
	golferRepo     golfer.Repository
	tournamentRepo tournament.Repository
	pickRepo       pick.Repository
	now            func() time.Time
}

func NewPickService(
	userRepo user.Repository,
	golferRepo golfer.Repository,
	tournamentRepo tournament.Repository,
	pickRepo pick.Repository,
) *PickService {
	return &PickService{
		userRepo:       userRepo,
		golferRepo:     golferRepo,
		tournamentRepo: tournamentRepo,
		pickRepo:       pickRepo,
		now:            time.Now,
	}
}

// SubmitPicks replaces the user's pick set for one tournament. Every
// check runs before the replace, so a rejected submission leaves the
// previously stored picks untouched:
//
//   - the tournament must exist and its deadline must not have passed
//   - exactly three distinct golfer ids; ids the roster has not seen are
//     created lazily rather than rejected
//   - no golfer already held by the same user in another tournament
func (s *PickService) SubmitPicks(ctx context.Context, input SubmitPicksInput) error {
	ctx, span := startUsecaseSpan(ctx, "PickService.SubmitPicks")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.TournamentID = strings.TrimSpace(input.TournamentID)

	if input.UserID == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if input.TournamentID == "" {
		return fmt.Errorf("%w: tournament_id is required", ErrInvalidInput)
	}

	golferIDs := make([]string, 0, len(input.GolferIDs))
	seen := make(map[string]struct{}, len(input.GolferIDs))
	for _, raw := range input.GolferIDs {
		id := strings.TrimSpace(raw)
		if id == "" {
			return fmt.Errorf("%w: golfer ids must not be empty", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: golfer %s appears more than once", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
		golferIDs = append(golferIDs, id)
	}
	if len(golferIDs) != pick.PicksPerTournament {
		return fmt.Errorf("%w: exactly %d golfer ids must be provided", ErrInvalidInput, pick.PicksPerTournament)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, input.TournamentID)
	if err != nil {
		return fmt.Errorf("get tournament by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: tournament %s", ErrNotFound, input.TournamentID)
	}
	if !item.AcceptsPicksAt(s.now()) {
		return fmt.Errorf("%w: tournament %s closed at %s", ErrDeadlinePassed, item.ID, item.SubmissionEnd.Format(time.RFC3339))
	}

	if _, exists, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return fmt.Errorf("get user by id: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: user %s", ErrNotFound, input.UserID)
	}

	known, err := s.golferRepo.GetByIDs(ctx, golferIDs)
	if err != nil {
		return fmt.Errorf("get golfers by ids: %w", err)
	}
	knownByID := make(map[string]golfer.Golfer, len(known))
	for _, g := range known {
		knownByID[g.ID] = g
	}
	for _, id := range golferIDs {
		if _, ok := knownByID[id]; ok {
			continue
		}
		// First reference creates the golfer; the id stands in for the
		// name until a field fetch supplies the real one.
		placeholder := golfer.Golfer{ID: id, Name: id}
		if err := s.golferRepo.Create(ctx, placeholder); err != nil {
			return fmt.Errorf("create golfer %s: %w", id, err)
		}
		knownByID[id] = placeholder
	}

	existingPicks, err := s.pickRepo.ListByUser(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("list picks by user: %w", err)
	}
	for _, p := range existingPicks {
		if p.TournamentID == input.TournamentID {
			continue
		}
		if _, wanted := seen[p.GolferID]; wanted {
			name := p.GolferID
			if g, ok := knownByID[p.GolferID]; ok {
				name = g.Name
			}
			return fmt.Errorf("%w: %s was already picked in another tournament", ErrConflict, name)
		}
	}

	if err := s.pickRepo.ReplaceForTournament(ctx, input.UserID, input.TournamentID, golferIDs); err != nil {
		return fmt.Errorf("replace picks: %w", err)
	}

	return nil
}

// UserTournamentPicks returns the user's stored picks for one tournament
// with golfer names resolved. An empty slice means no submission yet.
func (s *PickService) UserTournamentPicks(ctx context.Context, userID, tournamentID string) ([]UserPick, error) {
	ctx, span := startUsecaseSpan(ctx, "PickService.UserTournamentPicks")
	defer span.End()

	userID = strings.TrimSpace(userID)
	tournamentID = strings.TrimSpace(tournamentID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	picks, err := s.pickRepo.ListByUserAndTournament(ctx, userID, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	if len(picks) == 0 {
		return []UserPick{}, nil
	}

	ids := make([]string, 0, len(picks))
	for _, p := range picks {
		ids = append(ids, p.GolferID)
	}
	golfers, err := s.golferRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get golfers by ids: %w", err)
	}
	nameByID := make(map[string]string, len(golfers))
	for _, g := range golfers {
		nameByID[g.ID] = g.Name
	}

	out := make([]UserPick, 0, len(picks))
	for _, p := range picks {
		name := nameByID[p.GolferID]
		if name == "" {
			name = p.GolferID
		}
		out = append(out, UserPick{GolferID: p.GolferID, GolferName: name})
	}

	return out, nil
}
