// SoleStyle | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/solestyle/api/internal/core"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Account, error)
	GetActiveByLogin(ctx context.Context, login string) (*Account, error)
	Create(ctx context.Context, account *Account) (*Account, error)
	UpdateProfile(ctx context.Context, account *Account) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	TouchLastLogin(ctx context.Context, id int64) error
	ListForAdmin(
		ctx context.Context,
		limit, offset int,
	) ([]AdminUserRow, int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const accountColumns = `
	id, username, email, password_hash, first_name, last_name,
	phone, date_of_birth, gender, is_active, last_login,
	created_at, updated_at`

func (r *repository) GetByID(ctx context.Context, id int64) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, accountColumns)

	var account Account
	if err := r.db.GetContext(ctx, &account, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &account, nil
}

// GetActiveByLogin matches either the username or the email and never
// surfaces deactivated accounts.
func (r *repository) GetActiveByLogin(
	ctx context.Context,
	login string,
) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE (username = $1 OR email = $1) AND is_active = true`,
		accountColumns,
	)

	var account Account
	if err := r.db.GetContext(ctx, &account, query, login); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get user by login: %w", err)
	}

	return &account, nil
}

func (r *repository) Create(
	ctx context.Context,
	account *Account,
) (*Account, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (
			username, email, password_hash, first_name, last_name, phone
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`,
		accountColumns,
	)

	var created Account
	err := r.db.GetContext(
		ctx,
		&created,
		query,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.FirstName,
		account.LastName,
		account.Phone,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, core.ErrDuplicateKey
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return &created, nil
}

func (r *repository) UpdateProfile(
	ctx context.Context,
	account *Account,
) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, phone = $3,
		    date_of_birth = $4, gender = $5, updated_at = NOW()
		WHERE id = $6`

	result, err := r.db.ExecContext(
		ctx,
		query,
		account.FirstName,
		account.LastName,
		account.Phone,
		account.DateOfBirth,
		account.Gender,
		account.ID,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile rows affected: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}

	return nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id int64,
	passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password rows affected: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}

	return nil
}

func (r *repository) TouchLastLogin(ctx context.Context, id int64) error {
	query := `UPDATE users SET last_login = NOW() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}

	return nil
}

func (r *repository) ListForAdmin(
	ctx context.Context,
	limit, offset int,
) ([]AdminUserRow, int, error) {
	query := `
		SELECT id, username, email, first_name, last_name,
		       is_active, last_login, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows := []AdminUserRow{}
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM users`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	return rows, total, nil
}
