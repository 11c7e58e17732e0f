// SoleStyle | 2026
// repository.go

package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/solestyle/api/internal/core"
)

type Repository interface {
	ListLines(ctx context.Context, userID int64) ([]Line, error)
	ProductIsActive(ctx context.Context, productID int64) (bool, error)
	UpsertItem(
		ctx context.Context,
		userID, productID int64,
		size string,
		quantity int,
	) error
	UpdateQuantity(
		ctx context.Context,
		userID, itemID int64,
		quantity int,
	) error
	DeleteItem(ctx context.Context, userID, itemID int64) error
	Clear(ctx context.Context, userID int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListLines(
	ctx context.Context,
	userID int64,
) ([]Line, error) {
	query := `
		SELECT ci.id, ci.product_id, p.name, p.slug, p.price, p.sale_price,
		       ci.size, ci.quantity, p.stock_quantity,
		       (SELECT pi.image_url FROM product_images pi
		        WHERE pi.product_id = p.id
		        ORDER BY pi.is_primary DESC, pi.sort_order, pi.id
		        LIMIT 1) AS primary_image,
		       ci.created_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at DESC`

	lines := []Line{}
	if err := r.db.SelectContext(ctx, &lines, query, userID); err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}

	return lines, nil
}

func (r *repository) ProductIsActive(
	ctx context.Context,
	productID int64,
) (bool, error) {
	query := `SELECT is_active FROM products WHERE id = $1`

	var active bool
	if err := r.db.GetContext(ctx, &active, query, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check product: %w", err)
	}

	return active, nil
}

// UpsertItem folds a repeat add of the same product and size into the
// existing row instead of creating a duplicate line.
func (r *repository) UpsertItem(
	ctx context.Context,
	userID, productID int64,
	size string,
	quantity int,
) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, size, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id, size)
		DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity,
			updated_at = NOW()`

	if _, err := r.db.ExecContext(
		ctx, query, userID, productID, size, quantity,
	); err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}

	return nil
}

func (r *repository) UpdateQuantity(
	ctx context.Context,
	userID, itemID int64,
	quantity int,
) error {
	query := `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3`

	result, err := r.db.ExecContext(ctx, query, quantity, itemID, userID)
	if err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update cart quantity rows affected: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}

	return nil
}

func (r *repository) DeleteItem(
	ctx context.Context,
	userID, itemID int64,
) error {
	query := `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, itemID, userID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete cart item rows affected: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}

	return nil
}

func (r *repository) Clear(ctx context.Context, userID int64) error {
	query := `DELETE FROM cart_items WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	return nil
}
