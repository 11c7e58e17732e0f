// SoleStyle | 2026
// service.go

package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/solestyle/api/internal/auth"
	"github.com/solestyle/api/internal/core"
	"github.com/solestyle/api/internal/middleware"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Stats(ctx context.Context) (*DashboardStats, error) {
	return s.repo.Stats(ctx)
}

// GetActiveByLogin implements auth.AdminProvider.
func (s *Service) GetActiveByLogin(
	ctx context.Context,
	login string,
) (*auth.AdminInfo, error) {
	admin, err := s.repo.GetActiveByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	return &auth.AdminInfo{
		ID:           admin.ID,
		Username:     admin.Username,
		Email:        admin.Email,
		FirstName:    admin.FirstName,
		LastName:     admin.LastName,
		Role:         admin.Role,
		PasswordHash: admin.PasswordHash,
	}, nil
}

// TouchLastLogin implements auth.AdminProvider.
func (s *Service) TouchLastLogin(ctx context.Context, adminID int64) error {
	return s.repo.TouchLastLogin(ctx, adminID)
}

// CheckActiveAdmin implements middleware.AdminChecker. A token minted for
// an administrator that has since been deactivated stops working here.
func (s *Service) CheckActiveAdmin(ctx context.Context, adminID int64) error {
	_, err := s.repo.GetActiveByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.ErrForbidden
		}
		return fmt.Errorf("check active admin: %w", err)
	}

	return nil
}

var (
	_ auth.AdminProvider      = (*Service)(nil)
	_ middleware.AdminChecker = (*Service)(nil)
)
