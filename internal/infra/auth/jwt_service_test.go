package auth

import (
	"testing"
	"time"

	"orderservice/config"
	"orderservice/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

func newTestConfig(enabled bool, secret string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Enabled:      enabled,
			Secret:       secret,
			RequiredRole: "order-admin",
		},
	}
}

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims *service.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func validClaims() *service.Claims {
	return &service.Claims{
		Roles: []string{"order-admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "operator-1",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestNewJWTService_RequiresSecretWhenEnabled(t *testing.T) {
	_, err := NewJWTService(newTestConfig(true, ""))
	require.Error(t, err)

	svc, err := NewJWTService(newTestConfig(false, ""))
	require.NoError(t, err)
	assert.NotNil(t, svc)

	svc, err = NewJWTService(&config.Config{})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(true, testSecret))
	require.NoError(t, err)

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{
			name:  "valid HS256 token",
			token: signToken(t, jwt.SigningMethodHS256, testSecret, validClaims()),
		},
		{
			name:  "valid HS512 token",
			token: signToken(t, jwt.SigningMethodHS512, testSecret, validClaims()),
		},
		{
			name:    "wrong secret",
			token:   signToken(t, jwt.SigningMethodHS256, "another_secret", validClaims()),
			wantErr: true,
		},
		{
			name:    "expired",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, expired),
			wantErr: true,
		},
		{
			name:    "missing expiry",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, noExpiry),
			wantErr: true,
		},
		{
			name:    "not a jwt",
			token:   "clearly-not-a-jwt-token-format",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "operator-1", claims.Subject)
			assert.Equal(t, []string{"order-admin"}, claims.Roles)
		})
	}
}

func TestJWTService_ValidateToken_NotConfigured(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(false, ""))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signToken(t, jwt.SigningMethodHS256, testSecret, validClaims()))
	assert.Error(t, err)
}
