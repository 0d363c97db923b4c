package postgres

import "time"

type userTableModel struct {
	ID          string    `db:"id"`
	DisplayName string    `db:"display_name"`
	Email       string    `db:"email"`
	CreatedAt   time.Time `db:"created_at"`
}

type userInsertModel struct {
	ID          string `db:"id"`
	DisplayName string `db:"display_name"`
	Email       string `db:"email"`
}
