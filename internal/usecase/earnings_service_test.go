package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fairwaypool/golf-pickem/internal/domain/result"
	"github.com/fairwaypool/golf-pickem/internal/domain/tournament"
	"github.com/fairwaypool/golf-pickem/internal/infrastructure/repository/memory"
	"github.com/fairwaypool/golf-pickem/internal/platform/logging"
)

type fakeEarningsProvider struct {
	mu     sync.Mutex
	sheets map[string][]EarningsRecord
	errs   map[string]error
	calls  map[string]int
}

func newFakeEarningsProvider() *fakeEarningsProvider {
	return &fakeEarningsProvider{
		sheets: make(map[string][]EarningsRecord),
		errs:   make(map[string]error),
		calls:  make(map[string]int),
	}
}

func (p *fakeEarningsProvider) FetchEarnings(_ context.Context, tournamentID string, _ int) ([]EarningsRecord, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls[tournamentID]++
	if err, ok := p.errs[tournamentID]; ok {
		return nil, false, err
	}
	sheet, ok := p.sheets[tournamentID]
	if !ok {
		return nil, false, nil
	}
	return sheet, true, nil
}

func (p *fakeEarningsProvider) callCount(tournamentID string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[tournamentID]
}

func newEarningsServiceForTest(provider EarningsProvider, results []result.Result) (*EarningsService, *memory.ResultRepository) {
	resultRepo := memory.NewResultRepository(results)
	service := NewEarningsService(
		memory.NewTournamentRepository(memory.SeedTournaments()),
		resultRepo,
		provider,
		logging.NewNop(),
	)

	return service, resultRepo
}

func TestEarningsService_UpsertEarnings_InsertsThenOverwrites(t *testing.T) {
	service, resultRepo := newEarningsServiceForTest(newFakeEarningsProvider(), nil)

	count, err := service.UpsertEarnings(t.Context(), memory.TournamentIDPlayers, []EarningsRecord{
		{GolferID: "46046", Earnings: 5000},
		{GolferID: "52955", Earnings: 0},
		{GolferID: "", Earnings: 100},
	})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 stored records after dropping the empty id, got %d", count)
	}

	count, err = service.UpsertEarnings(t.Context(), memory.TournamentIDPlayers, []EarningsRecord{
		{GolferID: "46046", Earnings: 7500},
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 stored record, got %d", count)
	}

	stored, err := resultRepo.ListByTournament(t.Context(), memory.TournamentIDPlayers)
	if err != nil {
		t.Fatalf("list results failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 result rows after overwrite, got %d", len(stored))
	}
	if stored[0].GolferID != "46046" || stored[0].Earnings != 7500 {
		t.Fatalf("expected overwritten earnings 7500, got %+v", stored[0])
	}
}

func TestEarningsService_UpsertEarnings_UnknownTournament(t *testing.T) {
	service, _ := newEarningsServiceForTest(newFakeEarningsProvider(), nil)

	_, err := service.UpsertEarnings(t.Context(), "no-such-tournament", []EarningsRecord{
		{GolferID: "46046", Earnings: 5000},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEarningsService_UpsertEarnings_RejectsNegativeEarnings(t *testing.T) {
	service, _ := newEarningsServiceForTest(newFakeEarningsProvider(), nil)

	_, err := service.UpsertEarnings(t.Context(), memory.TournamentIDPlayers, []EarningsRecord{
		{GolferID: "46046", Earnings: -1},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEarningsService_SyncTournament_MapsMissingLeaderboardToNotFound(t *testing.T) {
	provider := newFakeEarningsProvider()
	service, _ := newEarningsServiceForTest(provider, nil)

	_, err := service.SyncTournament(t.Context(), memory.TournamentIDPlayers)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unpublished leaderboard, got %v", err)
	}

	provider.sheets[memory.TournamentIDPlayers] = []EarningsRecord{
		{GolferID: "46046", Earnings: 5000},
		{GolferID: "52955", Earnings: 3000},
	}
	count, err := service.SyncTournament(t.Context(), memory.TournamentIDPlayers)
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 synced records, got %d", count)
	}
}

func TestEarningsService_SyncTournament_UpstreamFailure(t *testing.T) {
	provider := newFakeEarningsProvider()
	provider.errs[memory.TournamentIDPlayers] = errors.New("upstream boom")
	service, _ := newEarningsServiceForTest(provider, nil)

	_, err := service.SyncTournament(t.Context(), memory.TournamentIDPlayers)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestEarningsService_SweepRecent_SkipsAndContinuesOnFailure(t *testing.T) {
	now := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	tournaments := []tournament.Tournament{
		// Inside the lookback window.
		{ID: "101", Name: "Recent Synced", Year: 2026, SubmissionStart: now.AddDate(0, 0, -6), SubmissionEnd: now.AddDate(0, 0, -3)},
		{ID: "102", Name: "Recent Stored", Year: 2026, SubmissionStart: now.AddDate(0, 0, -6), SubmissionEnd: now.AddDate(0, 0, -2)},
		{ID: "103", Name: "Recent Failing", Year: 2026, SubmissionStart: now.AddDate(0, 0, -6), SubmissionEnd: now.AddDate(0, 0, -1)},
		{ID: "104", Name: "Recent Pending", Year: 2026, SubmissionStart: now.AddDate(0, 0, -6), SubmissionEnd: now.Add(-time.Hour)},
		// Outside the lookback window on either side.
		{ID: "105", Name: "Long Finished", Year: 2026, SubmissionStart: now.AddDate(0, 0, -20), SubmissionEnd: now.AddDate(0, 0, -10)},
		{ID: "106", Name: "Still Upcoming", Year: 2026, SubmissionStart: now.AddDate(0, 0, 5), SubmissionEnd: now.AddDate(0, 0, 9)},
	}

	provider := newFakeEarningsProvider()
	provider.sheets["101"] = []EarningsRecord{{GolferID: "46046", Earnings: 2500}}
	provider.errs["103"] = errors.New("upstream boom")

	resultRepo := memory.NewResultRepository([]result.Result{
		{TournamentID: "102", GolferID: "52955", Earnings: 1000},
	})
	service := NewEarningsService(
		memory.NewTournamentRepository(tournaments),
		resultRepo,
		provider,
		logging.NewNop(),
	)
	service.now = func() time.Time { return now }
	service.sweepWorkers = 2

	sweep, err := service.SweepRecent(t.Context())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if sweep.Checked != 4 {
		t.Fatalf("expected 4 tournaments inside the lookback, got %d checked", sweep.Checked)
	}
	if sweep.Synced != 1 || sweep.Failed != 1 || sweep.Skipped != 2 {
		t.Fatalf("expected synced=1 failed=1 skipped=2, got %+v", sweep)
	}

	// Already-stored results kept the provider out of the loop entirely.
	if provider.callCount("102") != 0 {
		t.Fatalf("expected no provider call for tournament with stored results, got %d", provider.callCount("102"))
	}
	if provider.callCount("105") != 0 || provider.callCount("106") != 0 {
		t.Fatal("expected no provider calls outside the lookback window")
	}

	stored, err := resultRepo.ListByTournament(t.Context(), "101")
	if err != nil {
		t.Fatalf("list results failed: %v", err)
	}
	if len(stored) != 1 || stored[0].Earnings != 2500 {
		t.Fatalf("expected synced result for tournament 101, got %+v", stored)
	}
}
