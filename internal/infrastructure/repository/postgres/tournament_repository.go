package postgres

import (
	"context"
	"fmt"

	"github.com/fairwaypool/golf-pickem/internal/domain/tournament"
	qb "github.com/fairwaypool/golf-pickem/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) GetByID(ctx context.Context, id string) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("*").From("tournaments").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build get tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament: %w", err)
	}

	return tournamentFromRow(row), true, nil
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	query, args, err := qb.Select("*").From("tournaments").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, tournamentFromRow(row))
	}

	return out, nil
}

func (r *TournamentRepository) Create(ctx context.Context, item tournament.Tournament) error {
	query, args, err := qb.InsertModel("tournaments", tournamentInsertModel{
		ID:              item.ID,
		Name:            item.Name,
		Year:            item.Year,
		SubmissionStart: item.SubmissionStart.UTC(),
		SubmissionEnd:   item.SubmissionEnd.UTC(),
	}, "")
	if err != nil {
		return fmt.Errorf("build insert tournament query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert tournament: %w", err)
	}

	return nil
}

func tournamentFromRow(row tournamentTableModel) tournament.Tournament {
	return tournament.Tournament{
		ID:              row.ID,
		Name:            row.Name,
		Year:            row.Year,
		SubmissionStart: row.SubmissionStart.UTC(),
		SubmissionEnd:   row.SubmissionEnd.UTC(),
	}
}
