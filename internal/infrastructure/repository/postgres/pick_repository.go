package postgres

import (
	"context"
	"fmt"

	"github.com/fairwaypool/golf-pickem/internal/domain/pick"
	qb "github.com/fairwaypool/golf-pickem/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

func (r *PickRepository) ListByUser(ctx context.Context, userID string) ([]pick.Pick, error) {
	return r.list(ctx, qb.Eq("user_id", userID))
}

func (r *PickRepository) ListByUserAndTournament(ctx context.Context, userID, tournamentID string) ([]pick.Pick, error) {
	return r.list(ctx, qb.Eq("user_id", userID), qb.Eq("tournament_id", tournamentID))
}

func (r *PickRepository) ListByTournament(ctx context.Context, tournamentID string) ([]pick.Pick, error) {
	return r.list(ctx, qb.Eq("tournament_id", tournamentID))
}

func (r *PickRepository) ListAll(ctx context.Context) ([]pick.Pick, error) {
	return r.list(ctx)
}

// ReplaceForTournament swaps the user's pick set for the tournament in
// one transaction, so readers never observe a partial set.
func (r *PickRepository) ReplaceForTournament(ctx context.Context, userID, tournamentID string, golferIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for pick replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("picks").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("tournament_id", tournamentID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete picks query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete picks: %w", err)
	}

	for _, golferID := range golferIDs {
		insertQuery, insertArgs, err := qb.InsertModel("picks", pickInsertModel{
			UserID:       userID,
			TournamentID: tournamentID,
			GolferID:     golferID,
		}, "")
		if err != nil {
			return fmt.Errorf("build insert pick query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert pick: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit pick replace: %w", err)
	}

	return nil
}

func (r *PickRepository) list(ctx context.Context, conditions ...qb.Condition) ([]pick.Pick, error) {
	query, args, err := qb.Select("*").From("picks").
		Where(conditions...).
		OrderBy("user_id", "tournament_id", "golfer_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list picks query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	out := make([]pick.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pick.Pick{
			UserID:       row.UserID,
			TournamentID: row.TournamentID,
			GolferID:     row.GolferID,
		})
	}

	return out, nil
}
