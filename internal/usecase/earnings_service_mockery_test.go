package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fairwaypool/golf-pickem/internal/domain/result"
	"github.com/fairwaypool/golf-pickem/internal/domain/tournament"
	resultmock "github.com/fairwaypool/golf-pickem/internal/mocks/domain/result"
	tournamentmock "github.com/fairwaypool/golf-pickem/internal/mocks/domain/tournament"
	"github.com/stretchr/testify/mock"
)

func TestEarningsService_UpsertEarnings_BatchesRecordsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tournamentRepo := tournamentmock.NewRepository(t)
	resultRepo := resultmock.NewRepository(t)
	service := NewEarningsService(tournamentRepo, resultRepo, nil, nil)

	tournamentRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "016").
		Return(tournament.Tournament{ID: "016", Year: 2026}, true, nil).
		Once()

	// The record with no golfer id is dropped before the batch write.
	wantBatch := []result.Result{
		{TournamentID: "016", GolferID: "46046", Earnings: 1_500_000},
		{TournamentID: "016", GolferID: "52955", Earnings: 908_000},
	}
	resultRepo.
		On("UpsertBatch", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), wantBatch).
		Return(nil).
		Once()

	count, err := service.UpsertEarnings(ctx, "016", []EarningsRecord{
		{GolferID: "46046", Earnings: 1_500_000},
		{GolferID: "  ", Earnings: 50_000},
		{GolferID: "52955", Earnings: 908_000},
	})
	if err != nil {
		t.Fatalf("upsert earnings: %v", err)
	}
	if count != 2 {
		t.Fatalf("unexpected upsert count: got=%d want=2", count)
	}
}

func TestEarningsService_UpsertEarnings_UnknownTournamentUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tournamentRepo := tournamentmock.NewRepository(t)
	resultRepo := resultmock.NewRepository(t)
	service := NewEarningsService(tournamentRepo, resultRepo, nil, nil)

	tournamentRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "missing").
		Return(tournament.Tournament{}, false, nil).
		Once()

	_, err := service.UpsertEarnings(ctx, "missing", []EarningsRecord{{GolferID: "46046", Earnings: 1}})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
