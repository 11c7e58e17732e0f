// SoleStyle | 2026
// service.go

package address

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByUser(
	ctx context.Context,
	userID int64,
) ([]Address, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create demotes the user's existing default first when the new address
// claims the slot, so at most one default survives.
func (s *Service) Create(
	ctx context.Context,
	userID int64,
	req CreateAddressRequest,
) (*Address, error) {
	if req.IsDefault {
		if err := s.repo.ClearDefaults(ctx, userID); err != nil {
			return nil, fmt.Errorf("create address: %w", err)
		}
	}

	addr := &Address{
		UserID:       userID,
		Type:         req.Type,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		AddressLine1: req.AddressLine1,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		IsDefault:    req.IsDefault,
	}
	if req.AddressLine2 != "" {
		addr.AddressLine2 = &req.AddressLine2
	}
	if req.Phone != "" {
		addr.Phone = &req.Phone
	}

	return s.repo.Create(ctx, addr)
}

func (s *Service) Delete(ctx context.Context, userID, addressID int64) error {
	return s.repo.Delete(ctx, userID, addressID)
}

// SetDefault clears every default before promoting the target. The two
// statements run without a transaction; a failure between them leaves the
// user with no default, which the next promotion repairs.
func (s *Service) SetDefault(
	ctx context.Context,
	userID, addressID int64,
) error {
	if err := s.repo.ClearDefaults(ctx, userID); err != nil {
		return fmt.Errorf("set default address: %w", err)
	}

	return s.repo.SetDefault(ctx, userID, addressID)
}
