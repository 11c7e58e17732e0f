// SoleStyle | 2026
// jwt_test.go

package auth

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solestyle/api/internal/config"
	"github.com/solestyle/api/internal/core"
)

func newTestJWTManager(t *testing.T, cfg config.JWTConfig) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	require.NoError(t, GenerateKeyPair(privatePath, publicPath))

	cfg.PrivateKeyPath = privatePath
	cfg.PublicKeyPath = publicPath
	if cfg.Issuer == "" {
		cfg.Issuer = "solestyle"
	}
	if cfg.Audience == "" {
		cfg.Audience = "solestyle-api"
	}
	if cfg.CustomerTokenExpire == 0 {
		cfg.CustomerTokenExpire = 24 * time.Hour
	}
	if cfg.AdminTokenExpire == 0 {
		cfg.AdminTokenExpire = 8 * time.Hour
	}

	manager, err := NewJWTManager(cfg)
	require.NoError(t, err)

	return manager
}

func TestCustomerTokenRoundTrip(t *testing.T) {
	manager := newTestJWTManager(t, config.JWTConfig{})

	token, err := manager.CreateCustomerToken(SubjectClaims{
		UserID:   42,
		Username: "jdoe",
		Email:    "jdoe@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verified, err := manager.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), verified.Claims.UserID)
	assert.Equal(t, "jdoe", verified.Claims.Username)
	assert.Equal(t, "jdoe@example.com", verified.Claims.Email)
	assert.False(t, verified.Claims.IsAdmin)
	assert.Empty(t, verified.Claims.Role)
	assert.NotEmpty(t, verified.JTI)
	assert.WithinDuration(
		t,
		time.Now().Add(24*time.Hour),
		verified.ExpiresAt,
		time.Minute,
	)
}

func TestAdminTokenCarriesElevatedClaims(t *testing.T) {
	manager := newTestJWTManager(t, config.JWTConfig{})

	token, err := manager.CreateAdminToken(SubjectClaims{
		UserID:   7,
		Username: "admin",
		Email:    "admin@example.com",
		Role:     "super_admin",
	})
	require.NoError(t, err)

	verified, err := manager.Verify(token)
	require.NoError(t, err)

	assert.True(t, verified.Claims.IsAdmin)
	assert.Equal(t, "super_admin", verified.Claims.Role)
	assert.WithinDuration(
		t,
		time.Now().Add(8*time.Hour),
		verified.ExpiresAt,
		time.Minute,
	)
}

func TestVerifyExpiredToken(t *testing.T) {
	manager := newTestJWTManager(t, config.JWTConfig{
		CustomerTokenExpire: -time.Minute,
	})

	token, err := manager.CreateCustomerToken(SubjectClaims{
		UserID:   1,
		Username: "expired",
	})
	require.NoError(t, err)

	_, err = manager.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenExpired))
}

func TestVerifyGarbageToken(t *testing.T) {
	manager := newTestJWTManager(t, config.JWTConfig{})

	_, err := manager.Verify("not.a.token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuing := newTestJWTManager(t, config.JWTConfig{})
	verifying := newTestJWTManager(t, config.JWTConfig{})

	token, err := issuing.CreateCustomerToken(SubjectClaims{
		UserID:   1,
		Username: "jdoe",
	})
	require.NoError(t, err)

	_, err = verifying.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}
