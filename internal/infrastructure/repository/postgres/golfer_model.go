package postgres

import "time"

type golferTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type golferInsertModel struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}
