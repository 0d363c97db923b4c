package postgres

import "time"

type tournamentTableModel struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Year            int       `db:"year"`
	SubmissionStart time.Time `db:"submission_start"`
	SubmissionEnd   time.Time `db:"submission_end"`
	CreatedAt       time.Time `db:"created_at"`
}

type tournamentInsertModel struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Year            int       `db:"year"`
	SubmissionStart time.Time `db:"submission_start"`
	SubmissionEnd   time.Time `db:"submission_end"`
}
