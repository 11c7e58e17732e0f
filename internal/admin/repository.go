// SoleStyle | 2026
// repository.go

package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/solestyle/api/internal/core"
)

type Repository interface {
	GetActiveByLogin(ctx context.Context, login string) (*Administrator, error)
	GetActiveByID(ctx context.Context, id int64) (*Administrator, error)
	TouchLastLogin(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*DashboardStats, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const administratorColumns = `
	id, username, email, password_hash, first_name, last_name,
	role, is_active, last_login, created_at, updated_at`

func (r *repository) GetActiveByLogin(
	ctx context.Context,
	login string,
) (*Administrator, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM administrators
		WHERE (username = $1 OR email = $1) AND is_active = true`,
		administratorColumns,
	)

	var admin Administrator
	if err := r.db.GetContext(ctx, &admin, query, login); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get administrator by login: %w", err)
	}

	return &admin, nil
}

func (r *repository) GetActiveByID(
	ctx context.Context,
	id int64,
) (*Administrator, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM administrators
		WHERE id = $1 AND is_active = true`,
		administratorColumns,
	)

	var admin Administrator
	if err := r.db.GetContext(ctx, &admin, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get administrator by id: %w", err)
	}

	return &admin, nil
}

func (r *repository) TouchLastLogin(ctx context.Context, id int64) error {
	query := `UPDATE administrators SET last_login = NOW() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("touch administrator last login: %w", err)
	}

	return nil
}

// Stats runs four independent aggregates; revenue only counts paid orders.
func (r *repository) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats

	queries := []struct {
		dest  any
		query string
	}{
		{
			&stats.TotalProducts,
			`SELECT COUNT(*) FROM products WHERE is_active = true`,
		},
		{
			&stats.TotalOrders,
			`SELECT COUNT(*) FROM orders`,
		},
		{
			&stats.TotalUsers,
			`SELECT COUNT(*) FROM users WHERE is_active = true`,
		},
		{
			&stats.TotalRevenue,
			`SELECT COALESCE(SUM(total_amount), 0) FROM orders
			 WHERE payment_status = 'paid'`,
		},
	}

	for _, q := range queries {
		if err := r.db.GetContext(ctx, q.dest, q.query); err != nil {
			return nil, fmt.Errorf("dashboard stats: %w", err)
		}
	}

	return &stats, nil
}
