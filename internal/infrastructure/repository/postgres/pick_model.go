package postgres

import "time"

type pickTableModel struct {
	UserID       string    `db:"user_id"`
	TournamentID string    `db:"tournament_id"`
	GolferID     string    `db:"golfer_id"`
	CreatedAt    time.Time `db:"created_at"`
}

type pickInsertModel struct {
	UserID       string `db:"user_id"`
	TournamentID string `db:"tournament_id"`
	GolferID     string `db:"golfer_id"`
}
