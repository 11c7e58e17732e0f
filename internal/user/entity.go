// SoleStyle | 2026
// entity.go

package user

import (
	"database/sql"
	"time"
)

// Account is a storefront customer row.
type Account struct {
	ID           int64          `db:"id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	Phone        sql.NullString `db:"phone"`
	DateOfBirth  sql.NullTime   `db:"date_of_birth"`
	Gender       sql.NullString `db:"gender"`
	IsActive     bool           `db:"is_active"`
	LastLogin    sql.NullTime   `db:"last_login"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
