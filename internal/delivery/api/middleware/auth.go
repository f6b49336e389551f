package middleware

import (
	"slices"
	"strings"

	"orderservice/config"
	"orderservice/internal/delivery/api/response"
	"orderservice/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeySubject = "subject"
	contextKeyRoles   = "roles"
)

// AuthMiddleware guards routes with a bearer token and a required role.
type AuthMiddleware struct {
	tokenSvc     service.TokenService
	enabled      bool
	requiredRole string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	m := &AuthMiddleware{tokenSvc: tokenSvc}
	if cfg.Auth != nil {
		m.enabled = cfg.Auth.Enabled
		m.requiredRole = cfg.Auth.RequiredRole
	}

	return m
}

// Guard authenticates the caller and, when a role is configured, authorizes it.
// It passes every request through when auth is disabled.
func (m *AuthMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.enabled {
		return next
	}

	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		if m.requiredRole != "" && !slices.Contains(claims.Roles, m.requiredRole) {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+m.requiredRole+"' role")
		}

		c.Set(contextKeySubject, claims.Subject)
		c.Set(contextKeyRoles, claims.Roles)

		return next(c)
	}
}

// GetSubject returns the authenticated subject set by Guard.
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(contextKeySubject).(string)

	return subject, ok
}

// GetRoles returns the authenticated roles set by Guard.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(contextKeyRoles).([]string)

	return roles, ok
}
