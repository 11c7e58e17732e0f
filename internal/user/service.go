// SoleStyle | 2026
// service.go

package user

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/solestyle/api/internal/auth"
	"github.com/solestyle/api/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProfile(
	ctx context.Context,
	userID int64,
) (*ProfileResponse, error) {
	account, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toProfileResponse(account), nil
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	userID int64,
	req UpdateProfileRequest,
) (*ProfileResponse, error) {
	account, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	account.FirstName = req.FirstName
	account.LastName = req.LastName
	account.Phone = nullString(req.Phone)
	account.Gender = nullString(req.Gender)

	account.DateOfBirth = sql.NullTime{}
	if req.DateOfBirth != "" {
		dob, parseErr := time.Parse("2006-01-02", req.DateOfBirth)
		if parseErr != nil {
			return nil, core.ValidationError("Invalid date of birth")
		}
		account.DateOfBirth = sql.NullTime{Time: dob, Valid: true}
	}

	if err := s.repo.UpdateProfile(ctx, account); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return toProfileResponse(account), nil
}

func (s *Service) ListForAdmin(
	ctx context.Context,
	limit, offset int,
) ([]AdminUserRow, int, error) {
	return s.repo.ListForAdmin(ctx, limit, offset)
}

// GetActiveByLogin implements auth.UserProvider.
func (s *Service) GetActiveByLogin(
	ctx context.Context,
	login string,
) (*auth.UserInfo, error) {
	account, err := s.repo.GetActiveByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	return toUserInfo(account), nil
}

// GetByID implements auth.UserProvider.
func (s *Service) GetByID(
	ctx context.Context,
	id int64,
) (*auth.UserInfo, error) {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(account), nil
}

// Create implements auth.UserProvider.
func (s *Service) Create(
	ctx context.Context,
	params auth.CreateAccountParams,
) (*auth.UserInfo, error) {
	account := &Account{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		Phone:        nullString(params.Phone),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	return toUserInfo(created), nil
}

// UpdatePassword implements auth.UserProvider.
func (s *Service) UpdatePassword(
	ctx context.Context,
	userID int64,
	passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

// TouchLastLogin implements auth.UserProvider.
func (s *Service) TouchLastLogin(ctx context.Context, userID int64) error {
	return s.repo.TouchLastLogin(ctx, userID)
}

func toUserInfo(a *Account) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           a.ID,
		Username:     a.Username,
		Email:        a.Email,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		PasswordHash: a.PasswordHash,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ auth.UserProvider = (*Service)(nil)
