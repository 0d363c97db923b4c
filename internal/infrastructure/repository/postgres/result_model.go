package postgres

import "time"

type resultTableModel struct {
	TournamentID string    `db:"tournament_id"`
	GolferID     string    `db:"golfer_id"`
	Earnings     int64     `db:"earnings"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type resultInsertModel struct {
	TournamentID string `db:"tournament_id"`
	GolferID     string `db:"golfer_id"`
	Earnings     int64  `db:"earnings"`
}
