// SoleStyle | 2026
// repository.go

package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/solestyle/api/internal/core"
)

type Repository interface {
	CreateMessage(
		ctx context.Context,
		name, email string,
		subject *string,
		message string,
	) error
	Subscribe(ctx context.Context, email string) error
	ListMessages(ctx context.Context, limit, offset int) ([]Message, int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CreateMessage(
	ctx context.Context,
	name, email string,
	subject *string,
	message string,
) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(
		ctx, query, name, email, subject, message,
	); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}

func (r *repository) Subscribe(ctx context.Context, email string) error {
	query := `INSERT INTO newsletter_subscribers (email) VALUES ($1)`

	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return core.ErrDuplicateKey
		}
		return fmt.Errorf("subscribe newsletter: %w", err)
	}

	return nil
}

func (r *repository) ListMessages(
	ctx context.Context,
	limit, offset int,
) ([]Message, int, error) {
	query := `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	messages := []Message{}
	if err := r.db.SelectContext(
		ctx, &messages, query, limit, offset,
	); err != nil {
		return nil, 0, fmt.Errorf("list contact messages: %w", err)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM contact_messages`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, fmt.Errorf("count contact messages: %w", err)
	}

	return messages, total, nil
}
