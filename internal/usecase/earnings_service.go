package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/fairwaypool/golf-pickem/internal/domain/result"
	"github.com/fairwaypool/golf-pickem/internal/domain/tournament"
	"github.com/fairwaypool/golf-pickem/internal/platform/logging"
)

// sweepLookback is how far back SweepRecent considers tournament
// deadlines; results usually publish within days of the final round.
const sweepLookback = 7 * 24 * time.Hour

const defaultSweepWorkers = 4

type sweepStatus string

const (
	sweepStatusSynced  sweepStatus = "synced"
	sweepStatusSkipped sweepStatus = "skipped"
	sweepStatusFailed  sweepStatus = "failed"
)

// SweepTournamentResult is the outcome of one tournament inside a sweep.
type SweepTournamentResult struct {
	TournamentID string
	Name         string
	Status       sweepStatus
	Records      int
	Message      string
}

// SweepResult summarizes one earnings sweep run.
type SweepResult struct {
	Checked     int
	Synced      int
	Skipped     int
	Failed      int
	Tournaments []SweepTournamentResult
}

// EarningsService ingests prize money, either pushed as a raw document
// or pulled from the earnings provider.
type EarningsService struct {
	tournamentRepo tournament.Repository
	resultRepo     result.Repository
	provider       EarningsProvider
	logger         *logging.Logger
	sweepWorkers   int
	now            func() time.Time
}

func NewEarningsService(
	tournamentRepo tournament.Repository,
	resultRepo result.Repository,
	provider EarningsProvider,
	logger *logging.Logger,
) *EarningsService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &EarningsService{
		tournamentRepo: tournamentRepo,
		resultRepo:     resultRepo,
		provider:       provider,
		logger:         logger,
		sweepWorkers:   defaultSweepWorkers,
		now:            time.Now,
	}
}

// UpsertEarnings stores a batch of per-golfer earnings for one
// tournament. The batch is applied atomically: either every record lands
// or none does. Records with an empty golfer id are dropped before the
// write, mirroring how provider leaderboards omit ids for amateurs.
func (s *EarningsService) UpsertEarnings(ctx context.Context, tournamentID string, records []EarningsRecord) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "EarningsService.UpsertEarnings")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return 0, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	if _, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		return 0, fmt.Errorf("get tournament by id: %w", err)
	} else if !exists {
		return 0, fmt.Errorf("%w: tournament %s", ErrNotFound, tournamentID)
	}

	batch := make([]result.Result, 0, len(records))
	for _, record := range records {
		record.GolferID = strings.TrimSpace(record.GolferID)
		if record.GolferID == "" {
			continue
		}
		item := result.Result{
			TournamentID: tournamentID,
			GolferID:     record.GolferID,
			Earnings:     record.Earnings,
		}
		if err := item.ValidateBasic(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		batch = append(batch, item)
	}
	if len(batch) == 0 {
		return 0, nil
	}

	if err := s.resultRepo.UpsertBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("upsert results: %w", err)
	}

	return len(batch), nil
}

// SyncTournament pulls the tournament's earnings from the provider and
// stores them. A leaderboard the provider has not published yet maps to
// ErrNotFound rather than a dependency failure.
func (s *EarningsService) SyncTournament(ctx context.Context, tournamentID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "EarningsService.SyncTournament")
	defer span.End()

	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return 0, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if s.provider == nil {
		return 0, fmt.Errorf("%w: earnings provider is not configured", ErrDependencyUnavailable)
	}

	item, exists, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return 0, fmt.Errorf("get tournament by id: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: tournament %s", ErrNotFound, tournamentID)
	}

	records, available, err := s.provider.FetchEarnings(ctx, item.ID, item.Year)
	if err != nil {
		return 0, fmt.Errorf("%w: fetch earnings: %v", ErrDependencyUnavailable, err)
	}
	if !available {
		return 0, fmt.Errorf("%w: no earnings published yet for tournament %s", ErrNotFound, item.ID)
	}

	count, err := s.UpsertEarnings(ctx, item.ID, records)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// SweepRecent syncs earnings for every tournament whose deadline fell
// within the lookback window and that has no stored results yet. Each
// tournament runs on a worker pool; one upstream failure is recorded and
// the sweep moves on.
func (s *EarningsService) SweepRecent(ctx context.Context) (SweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "EarningsService.SweepRecent")
	defer span.End()

	if s.provider == nil {
		return SweepResult{}, fmt.Errorf("%w: earnings provider is not configured", ErrDependencyUnavailable)
	}

	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("list tournaments: %w", err)
	}

	now := s.now().UTC()
	cutoff := now.Add(-sweepLookback)
	candidates := make([]tournament.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if t.SubmissionEnd.Before(cutoff) || t.SubmissionEnd.After(now) {
			continue
		}
		candidates = append(candidates, t)
	}

	sweep := SweepResult{
		Checked:     len(candidates),
		Tournaments: make([]SweepTournamentResult, 0, len(candidates)),
	}
	if len(candidates) == 0 {
		return sweep, nil
	}

	workerCount := s.sweepWorkers
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(candidates) {
		workerCount = len(candidates)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return SweepResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make(chan SweepTournamentResult, len(candidates))

	var syncedCount atomic.Int32
	var skippedCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, candidate := range candidates {
		candidate := candidate
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			rows <- s.sweepOne(ctx, candidate, &syncedCount, &skippedCount, &failedCount)
		}); err != nil {
			workers.Done()
			return SweepResult{}, fmt.Errorf("submit tournament to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		sweep.Tournaments = append(sweep.Tournaments, row)
	}
	sort.Slice(sweep.Tournaments, func(i, j int) bool {
		return sweep.Tournaments[i].TournamentID < sweep.Tournaments[j].TournamentID
	})

	sweep.Synced = int(syncedCount.Load())
	sweep.Skipped = int(skippedCount.Load())
	sweep.Failed = int(failedCount.Load())

	return sweep, nil
}

func (s *EarningsService) sweepOne(
	ctx context.Context,
	item tournament.Tournament,
	synced, skipped, failed *atomic.Int32,
) SweepTournamentResult {
	row := SweepTournamentResult{TournamentID: item.ID, Name: item.Name}

	hasResults, err := s.resultRepo.HasAnyForTournament(ctx, item.ID)
	if err != nil {
		failed.Add(1)
		row.Status = sweepStatusFailed
		row.Message = fmt.Sprintf("check existing results: %v", err)
		s.logger.ErrorContext(ctx, "earnings sweep tournament failed", "tournament_id", item.ID, "error", err)
		return row
	}
	if hasResults {
		skipped.Add(1)
		row.Status = sweepStatusSkipped
		row.Message = "results already stored"
		return row
	}

	records, available, err := s.provider.FetchEarnings(ctx, item.ID, item.Year)
	if err != nil {
		failed.Add(1)
		row.Status = sweepStatusFailed
		row.Message = fmt.Sprintf("fetch earnings: %v", err)
		s.logger.ErrorContext(ctx, "earnings sweep tournament failed", "tournament_id", item.ID, "error", err)
		return row
	}
	if !available {
		skipped.Add(1)
		row.Status = sweepStatusSkipped
		row.Message = "no earnings published yet"
		return row
	}

	count, err := s.UpsertEarnings(ctx, item.ID, records)
	if err != nil {
		failed.Add(1)
		row.Status = sweepStatusFailed
		row.Message = fmt.Sprintf("store earnings: %v", err)
		s.logger.ErrorContext(ctx, "earnings sweep tournament failed", "tournament_id", item.ID, "error", err)
		return row
	}

	synced.Add(1)
	row.Status = sweepStatusSynced
	row.Records = count
	s.logger.InfoContext(ctx, "earnings synced", "tournament_id", item.ID, "records", count)
	return row
}
