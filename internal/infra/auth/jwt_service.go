// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"orderservice/config"
	"orderservice/internal/domain/service"
	"orderservice/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService verifies HMAC-signed access tokens issued by the operator identity provider.
type jwtService struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// A secret is only required when the auth guard is enabled.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	var secret string
	if cfg.Auth != nil {
		secret = cfg.Auth.Secret
		if cfg.Auth.Enabled && secret == "" {
			return nil, errors.New("auth secret must be provided when auth is enabled")
		}
	}

	return &jwtService{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{
				jwt.SigningMethodHS256.Alg(),
				jwt.SigningMethodHS384.Alg(),
				jwt.SigningMethodHS512.Alg(),
			}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken checks signature and expiry and returns the token claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	if len(s.secret) == 0 {
		return nil, errors.New("token validation is not configured")
	}

	claims := &service.Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
