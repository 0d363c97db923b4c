package postgres

import (
	"context"
	"fmt"

	"github.com/fairwaypool/golf-pickem/internal/domain/result"
	qb "github.com/fairwaypool/golf-pickem/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type ResultRepository struct {
	db *sqlx.DB
}

func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

func (r *ResultRepository) ListByTournament(ctx context.Context, tournamentID string) ([]result.Result, error) {
	return r.list(ctx, qb.Eq("tournament_id", tournamentID))
}

func (r *ResultRepository) ListAll(ctx context.Context) ([]result.Result, error) {
	return r.list(ctx)
}

func (r *ResultRepository) HasAnyForTournament(ctx context.Context, tournamentID string) (bool, error) {
	query, args, err := qb.Select("1").From("tournament_results").
		Where(qb.Eq("tournament_id", tournamentID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build has results query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check tournament results: %w", err)
	}

	return true, nil
}

// UpsertBatch writes the whole batch in one transaction keyed on
// (tournament_id, golfer_id); a mid-batch failure rolls everything back.
func (r *ResultRepository) UpsertBatch(ctx context.Context, items []result.Result) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for result upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		query, args, err := qb.InsertModel("tournament_results", resultInsertModel{
			TournamentID: item.TournamentID,
			GolferID:     item.GolferID,
			Earnings:     item.Earnings,
		}, `ON CONFLICT (tournament_id, golfer_id)
DO UPDATE SET
    earnings = EXCLUDED.earnings,
    updated_at = now()`)
		if err != nil {
			return fmt.Errorf("build upsert result query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit result upsert: %w", err)
	}

	return nil
}

func (r *ResultRepository) list(ctx context.Context, conditions ...qb.Condition) ([]result.Result, error) {
	query, args, err := qb.Select("*").From("tournament_results").
		Where(conditions...).
		OrderBy("tournament_id", "golfer_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list results query: %w", err)
	}

	var rows []resultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	out := make([]result.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, result.Result{
			TournamentID: row.TournamentID,
			GolferID:     row.GolferID,
			Earnings:     row.Earnings,
		})
	}

	return out, nil
}
