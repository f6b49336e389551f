package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims expected on operator access tokens.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens presented to the order API.
// Tokens are issued elsewhere; this service only verifies them.
type TokenService interface {
	// ValidateToken checks signature and expiry and returns the token claims.
	ValidateToken(tokenString string) (*Claims, error)
}
