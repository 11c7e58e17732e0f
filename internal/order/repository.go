// SoleStyle | 2026
// repository.go

package order

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/solestyle/api/internal/core"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64, limit int) ([]Order, error)
	ItemsByOrderIDs(ctx context.Context, orderIDs []int64) ([]OrderItem, error)
	CountAndTotalByUser(
		ctx context.Context,
		userID int64,
	) (count int, total float64, err error)
	RecentForAdmin(ctx context.Context) ([]AdminOrderRow, error)
	ListForAdmin(
		ctx context.Context,
		limit, offset int,
	) ([]AdminOrderRow, int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID int64,
	limit int,
) ([]Order, error) {
	query := `
		SELECT id, order_number, status, payment_status, total_amount,
		       created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	orders := []Order{}
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

// ItemsByOrderIDs returns every line of the given orders, sorted so that
// callers can group them in a single pass.
func (r *repository) ItemsByOrderIDs(
	ctx context.Context,
	orderIDs []int64,
) ([]OrderItem, error) {
	if len(orderIDs) == 0 {
		return []OrderItem{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, order_id, product_name, size, quantity, price
		FROM order_items
		WHERE order_id IN (?)
		ORDER BY order_id, id`,
		orderIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("build order items query: %w", err)
	}

	items := []OrderItem{}
	query = r.db.Rebind(query)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}

	return items, nil
}

func (r *repository) CountAndTotalByUser(
	ctx context.Context,
	userID int64,
) (int, float64, error) {
	query := `
		SELECT COUNT(*) AS order_count,
		       COALESCE(SUM(total_amount), 0) AS total_spent
		FROM orders
		WHERE user_id = $1`

	var row struct {
		OrderCount int     `db:"order_count"`
		TotalSpent float64 `db:"total_spent"`
	}
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		return 0, 0, fmt.Errorf("count orders: %w", err)
	}

	return row.OrderCount, row.TotalSpent, nil
}

func (r *repository) RecentForAdmin(
	ctx context.Context,
) ([]AdminOrderRow, error) {
	query := `
		SELECT o.id, o.order_number, o.status, o.payment_status,
		       o.total_amount, u.first_name, u.last_name,
		       (SELECT COUNT(*) FROM order_items oi
		        WHERE oi.order_id = o.id) AS item_count,
		       o.created_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
		LIMIT 10`

	rows := []AdminOrderRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}

	return rows, nil
}

func (r *repository) ListForAdmin(
	ctx context.Context,
	limit, offset int,
) ([]AdminOrderRow, int, error) {
	query := `
		SELECT o.id, o.order_number, o.status, o.payment_status,
		       o.total_amount, u.first_name, u.last_name,
		       (SELECT COUNT(*) FROM order_items oi
		        WHERE oi.order_id = o.id) AS item_count,
		       o.created_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
		LIMIT $1 OFFSET $2`

	rows := []AdminOrderRow{}
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("list orders for admin: %w", err)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM orders`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, fmt.Errorf("count orders for admin: %w", err)
	}

	return rows, total, nil
}
