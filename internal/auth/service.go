// SoleStyle | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/solestyle/api/internal/core"
	"github.com/solestyle/api/internal/middleware"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("username or email already exists")
)

// UserInfo is the slice of an account the auth flow needs.
type UserInfo struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
}

// AdminInfo mirrors UserInfo for the separate administrator identity space.
type AdminInfo struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Role         string
	PasswordHash string
}

type CreateAccountParams struct {
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
}

// UserProvider is implemented by the user service; lookups only ever see
// active accounts.
type UserProvider interface {
	GetActiveByLogin(ctx context.Context, login string) (*UserInfo, error)
	GetByID(ctx context.Context, id int64) (*UserInfo, error)
	Create(ctx context.Context, params CreateAccountParams) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	TouchLastLogin(ctx context.Context, userID int64) error
}

// AdminProvider is implemented by the admin service.
type AdminProvider interface {
	GetActiveByLogin(ctx context.Context, login string) (*AdminInfo, error)
	TouchLastLogin(ctx context.Context, adminID int64) error
}

type Service struct {
	jwt    *JWTManager
	users  UserProvider
	admins AdminProvider
	redis  *redis.Client
}

func NewService(
	jwt *JWTManager,
	users UserProvider,
	admins AdminProvider,
	redisClient *redis.Client,
) *Service {
	return &Service{
		jwt:    jwt,
		users:  users,
		admins: admins,
		redis:  redisClient,
	}
}

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, CreateAccountParams{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
	})
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrAccountExists
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	token, err := s.jwt.CreateCustomerToken(SubjectClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	return &AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    toUserPayload(user),
	}, nil
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	user, err := s.users.GetActiveByLogin(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.users.UpdatePassword(ctx, user.ID, newHash)
	}

	//nolint:errcheck // last-login bookkeeping must not fail the login
	_ = s.users.TouchLastLogin(ctx, user.ID)

	token, err := s.jwt.CreateCustomerToken(SubjectClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	return &AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    toUserPayload(user),
	}, nil
}

func (s *Service) AdminLogin(
	ctx context.Context,
	req LoginRequest,
) (*AdminAuthResponse, error) {
	admin, err := s.admins.GetActiveByLogin(ctx, req.Username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	valid, _, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&admin.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	//nolint:errcheck // last-login bookkeeping must not fail the login
	_ = s.admins.TouchLastLogin(ctx, admin.ID)

	token, err := s.jwt.CreateAdminToken(SubjectClaims{
		UserID:   admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		Role:     admin.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	return &AdminAuthResponse{
		Message: "Admin login successful",
		Token:   token,
		Admin: AdminPayload{
			ID:        admin.ID,
			Username:  admin.Username,
			Email:     admin.Email,
			FirstName: admin.FirstName,
			LastName:  admin.LastName,
			Role:      admin.Role,
		},
	}, nil
}

func (s *Service) ChangePassword(
	ctx context.Context,
	userID int64,
	currentPassword, newPassword string,
) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}

	valid, _, err := core.VerifyPasswordWithRehash(
		currentPassword,
		user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return ErrInvalidCredentials
	}

	newHash, err := core.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return nil
}

// Logout places the token's jti on the denylist until the token would have
// expired on its own.
func (s *Service) Logout(ctx context.Context, rawToken string) error {
	verified, err := s.jwt.Verify(rawToken)
	if err != nil {
		// Already unusable; nothing to revoke.
		return nil
	}

	ttl := time.Until(verified.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	key := denylistKey(verified.JTI)
	if err := s.redis.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("denylist token: %w", err)
	}

	return nil
}

// VerifyAccessToken implements middleware.TokenVerifier: cryptographic
// verification first, then the denylist check.
func (s *Service) VerifyAccessToken(
	ctx context.Context,
	rawToken string,
) (*middleware.AccessTokenClaims, error) {
	verified, err := s.jwt.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	if verified.JTI != "" && s.redis != nil {
		revoked, err := s.redis.Exists(ctx, denylistKey(verified.JTI)).Result()
		if err != nil {
			return nil, fmt.Errorf("check denylist: %w", err)
		}
		if revoked > 0 {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
		}
	}

	return &verified.Claims, nil
}

func denylistKey(jti string) string {
	return "denylist:" + jti
}

func toUserPayload(u *UserInfo) UserPayload {
	return UserPayload{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

var _ middleware.TokenVerifier = (*Service)(nil)
