package domain

import "time"

// Staff is a back-office operator account. Staff authenticate with a login
// and password and hold a bearer token for the admin API.
type Staff struct {
	ID           int64     `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
