package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fairwaypool/golf-pickem/external/golfdata"
	"github.com/fairwaypool/golf-pickem/internal/config"
	"github.com/fairwaypool/golf-pickem/internal/domain/golfer"
	"github.com/fairwaypool/golf-pickem/internal/domain/pick"
	"github.com/fairwaypool/golf-pickem/internal/domain/result"
	"github.com/fairwaypool/golf-pickem/internal/domain/tournament"
	"github.com/fairwaypool/golf-pickem/internal/domain/user"
	"github.com/fairwaypool/golf-pickem/internal/infrastructure/repository/memory"
	"github.com/fairwaypool/golf-pickem/internal/infrastructure/repository/postgres"
	"github.com/fairwaypool/golf-pickem/internal/interfaces/httpapi"
	"github.com/fairwaypool/golf-pickem/internal/platform/logging"
	"github.com/fairwaypool/golf-pickem/internal/platform/resilience"
	"github.com/fairwaypool/golf-pickem/internal/usecase"
	"github.com/jmoiron/sqlx"
	"github.com/sourcegraph/conc"
)

type repositories struct {
	users       user.Repository
	golfers     golfer.Repository
	tournaments tournament.Repository
	picks       pick.Repository
	results     result.Repository
}

// App owns the HTTP server, the optional DB handle and the optional
// background earnings sweep loop.
type App struct {
	Server *http.Server

	cfg             config.Config
	logger          *logging.Logger
	db              *sqlx.DB
	earningsService *usecase.EarningsService

	sweepWG   conc.WaitGroup
	sweepStop chan struct{}
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{
		cfg:       cfg,
		logger:    logger,
		sweepStop: make(chan struct{}),
	}

	repos, err := a.buildRepositories()
	if err != nil {
		return nil, err
	}

	var client *golfdata.Client
	if cfg.GolfDataEnabled {
		client = golfdata.NewClient(golfdata.ClientConfig{
			BaseURL:    cfg.GolfDataBaseURL,
			APIKey:     cfg.GolfDataAPIKey,
			APIHost:    cfg.GolfDataAPIHost,
			Timeout:    cfg.GolfDataTimeout,
			MaxRetries: cfg.GolfDataMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.GolfDataCircuitEnabled,
				FailureThreshold: cfg.GolfDataCircuitFailureCount,
				OpenTimeout:      cfg.GolfDataCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.GolfDataCircuitHalfOpenMaxReq,
			},
		})
	}

	var earningsProvider usecase.EarningsProvider
	var rosterProvider usecase.RosterProvider
	if client != nil {
		earningsProvider = client
		rosterProvider = client
	}

	a.earningsService = usecase.NewEarningsService(repos.tournaments, repos.results, earningsProvider, logger)

	handler := httpapi.NewHandler(
		usecase.NewUserService(repos.users),
		usecase.NewGolferService(repos.golfers, repos.tournaments, rosterProvider),
		usecase.NewTournamentService(repos.tournaments),
		usecase.NewPickService(repos.users, repos.golfers, repos.tournaments, repos.picks),
		usecase.NewScoreboardService(repos.users, repos.golfers, repos.tournaments, repos.picks, repos.results),
		a.earningsService,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

// buildRepositories picks Postgres when DB_URL is set and falls back to
// seeded in-memory stores for DB-less dev runs.
func (a *App) buildRepositories() (repositories, error) {
	if a.cfg.DBURL == "" {
		a.logger.Info("using in-memory store", "reason", "DB_URL empty")
		return repositories{
			users:       memory.NewUserRepository(nil),
			golfers:     memory.NewGolferRepository(memory.SeedGolfers()),
			tournaments: memory.NewTournamentRepository(memory.SeedTournaments()),
			picks:       memory.NewPickRepository(nil),
			results:     memory.NewResultRepository(nil),
		}, nil
	}

	db, err := openDB(a.cfg)
	if err != nil {
		return repositories{}, err
	}
	a.db = db
	a.logger.Info("using postgres store", "db_name", dbNameFromURL(a.cfg.DBURL))

	return repositories{
		users:       postgres.NewUserRepository(db),
		golfers:     postgres.NewGolferRepository(db),
		tournaments: postgres.NewTournamentRepository(db),
		picks:       postgres.NewPickRepository(db),
		results:     postgres.NewResultRepository(db),
	}, nil
}

// StartSweepLoop runs the earnings sweep on its configured interval until
// Shutdown. A no-op unless the sweep is enabled.
func (a *App) StartSweepLoop() {
	if !a.cfg.SweepEnabled {
		a.logger.Info("earnings sweep disabled", "reason", "EARNINGS_SWEEP_ENABLED=false")
		return
	}

	interval := a.cfg.SweepInterval
	a.logger.Info("earnings sweep loop starting", "interval", interval.String())

	a.sweepWG.Go(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-a.sweepStop:
				return
			case <-ticker.C:
				a.runSweep()
			}
		}
	})
}

func (a *App) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.SweepInterval)
	defer cancel()

	sweep, err := a.earningsService.SweepRecent(ctx)
	if err != nil {
		a.logger.ErrorContext(ctx, "earnings sweep failed", "error", err)
		return
	}

	a.logger.InfoContext(ctx, "earnings sweep finished",
		"checked", sweep.Checked,
		"synced", sweep.Synced,
		"skipped", sweep.Skipped,
		"failed", sweep.Failed,
	)
}

// Shutdown stops the sweep loop, drains the HTTP server and closes the DB.
func (a *App) Shutdown(ctx context.Context) error {
	close(a.sweepStop)
	a.sweepWG.Wait()

	if err := a.Server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
	}

	return nil
}
