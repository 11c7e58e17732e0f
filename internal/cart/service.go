// SoleStyle | 2026
// service.go

package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/solestyle/api/internal/core"
)

var ErrProductUnavailable = errors.New("product unavailable")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListLines(
	ctx context.Context,
	userID int64,
) ([]Line, error) {
	return s.repo.ListLines(ctx, userID)
}

// AddItem rejects unknown and deactivated products with the same error so
// the client cannot distinguish the two.
func (s *Service) AddItem(
	ctx context.Context,
	userID int64,
	req AddItemRequest,
) error {
	active, err := s.repo.ProductIsActive(ctx, req.ProductID)
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	if !active {
		return ErrProductUnavailable
	}

	return s.repo.UpsertItem(ctx, userID, req.ProductID, req.Size, req.Quantity)
}

func (s *Service) UpdateQuantity(
	ctx context.Context,
	userID, itemID int64,
	quantity int,
) error {
	if quantity < 1 {
		return core.ValidationError("Valid quantity is required")
	}

	return s.repo.UpdateQuantity(ctx, userID, itemID, quantity)
}

func (s *Service) RemoveItem(
	ctx context.Context,
	userID, itemID int64,
) error {
	return s.repo.DeleteItem(ctx, userID, itemID)
}

func (s *Service) Clear(ctx context.Context, userID int64) error {
	return s.repo.Clear(ctx, userID)
}
