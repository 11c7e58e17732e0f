// SoleStyle | 2026
// repository.go

package address

import (
	"context"
	"fmt"

	"github.com/solestyle/api/internal/core"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]Address, error)
	Create(ctx context.Context, addr *Address) (*Address, error)
	Delete(ctx context.Context, userID, addressID int64) error
	ClearDefaults(ctx context.Context, userID int64) error
	SetDefault(ctx context.Context, userID, addressID int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const addressColumns = `
	id, user_id, type, first_name, last_name, address_line1, address_line2,
	city, state, postal_code, country, phone, is_default, created_at`

func (r *repository) ListByUser(
	ctx context.Context,
	userID int64,
) ([]Address, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC`,
		addressColumns,
	)

	addresses := []Address{}
	if err := r.db.SelectContext(ctx, &addresses, query, userID); err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	return addresses, nil
}

func (r *repository) Create(
	ctx context.Context,
	addr *Address,
) (*Address, error) {
	query := fmt.Sprintf(`
		INSERT INTO addresses (
			user_id, type, first_name, last_name, address_line1,
			address_line2, city, state, postal_code, country, phone,
			is_default
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s`,
		addressColumns,
	)

	var created Address
	err := r.db.GetContext(
		ctx,
		&created,
		query,
		addr.UserID,
		addr.Type,
		addr.FirstName,
		addr.LastName,
		addr.AddressLine1,
		addr.AddressLine2,
		addr.City,
		addr.State,
		addr.PostalCode,
		addr.Country,
		addr.Phone,
		addr.IsDefault,
	)
	if err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}

	return &created, nil
}

func (r *repository) Delete(
	ctx context.Context,
	userID, addressID int64,
) error {
	query := `DELETE FROM addresses WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, addressID, userID)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete address rows affected: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}

	return nil
}

func (r *repository) ClearDefaults(
	ctx context.Context,
	userID int64,
) error {
	query := `UPDATE addresses SET is_default = false WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("clear default addresses: %w", err)
	}

	return nil
}

func (r *repository) SetDefault(
	ctx context.Context,
	userID, addressID int64,
) error {
	query := `
		UPDATE addresses SET is_default = true
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, addressID, userID)
	if err != nil {
		return fmt.Errorf("set default address: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set default address rows affected: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}

	return nil
}
