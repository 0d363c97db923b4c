package postgres

import (
	"context"
	"fmt"

	"github.com/fairwaypool/golf-pickem/internal/domain/golfer"
	qb "github.com/fairwaypool/golf-pickem/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type GolferRepository struct {
	db *sqlx.DB
}

func NewGolferRepository(db *sqlx.DB) *GolferRepository {
	return &GolferRepository{db: db}
}

func (r *GolferRepository) GetByID(ctx context.Context, id string) (golfer.Golfer, bool, error) {
	query, args, err := qb.Select("*").From("golfers").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return golfer.Golfer{}, false, fmt.Errorf("build get golfer query: %w", err)
	}

	var row golferTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return golfer.Golfer{}, false, nil
		}
		return golfer.Golfer{}, false, fmt.Errorf("get golfer: %w", err)
	}

	return golferFromRow(row), true, nil
}

func (r *GolferRepository) GetByIDs(ctx context.Context, ids []string) ([]golfer.Golfer, error) {
	if len(ids) == 0 {
		return []golfer.Golfer{}, nil
	}

	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	query, args, err := qb.Select("*").From("golfers").
		Where(qb.In("id", values)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get golfers by ids query: %w", err)
	}

	var rows []golferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get golfers by ids: %w", err)
	}

	out := make([]golfer.Golfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, golferFromRow(row))
	}

	return out, nil
}

func (r *GolferRepository) List(ctx context.Context) ([]golfer.Golfer, error) {
	query, args, err := qb.Select("*").From("golfers").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list golfers query: %w", err)
	}

	var rows []golferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list golfers: %w", err)
	}

	out := make([]golfer.Golfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, golferFromRow(row))
	}

	return out, nil
}

func (r *GolferRepository) Create(ctx context.Context, item golfer.Golfer) error {
	query, args, err := qb.InsertModel("golfers", golferInsertModel{
		ID:   item.ID,
		Name: item.Name,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert golfer query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert golfer: %w", err)
	}

	return nil
}

func (r *GolferRepository) Update(ctx context.Context, item golfer.Golfer) error {
	query, args, err := qb.Update("golfers").
		Set("name", item.Name).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update golfer query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update golfer: %w", err)
	}

	return nil
}

func golferFromRow(row golferTableModel) golfer.Golfer {
	return golfer.Golfer{
		ID:   row.ID,
		Name: row.Name,
	}
}
