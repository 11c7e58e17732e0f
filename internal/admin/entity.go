// SoleStyle | 2026
// entity.go

package admin

import (
	"database/sql"
	"time"
)

// Administrator rows live in their own table, disjoint from customer
// accounts.
type Administrator struct {
	ID           int64          `db:"id"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	Role         string         `db:"role"`
	IsActive     bool           `db:"is_active"`
	LastLogin    sql.NullTime   `db:"last_login"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// DashboardStats is the aggregate header of the admin dashboard.
type DashboardStats struct {
	TotalProducts int     `json:"totalProducts" db:"total_products"`
	TotalOrders   int     `json:"totalOrders"   db:"total_orders"`
	TotalUsers    int     `json:"totalUsers"    db:"total_users"`
	TotalRevenue  float64 `json:"totalRevenue"  db:"total_revenue"`
}
