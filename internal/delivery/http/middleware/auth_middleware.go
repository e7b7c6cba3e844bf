// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"slices"
	"strings"

	"tastebook/internal/delivery/http/response"
	"tastebook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys for the authenticated principal.
const (
	keyUserID = "userID"
	keyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// bearerToken extracts the token string from the Authorization header.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", false
	}

	return tokenString, true
}

// Authenticate validates the JWT access token and sets the user ID and
// roles on the context. Requests without a valid token are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Missing or malformed bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyRoles, claims.Roles)

		return next(c)
	}
}

// OptionalAuthenticate sets the user ID and roles when a valid token is
// present but lets anonymous requests through. Read endpoints use it so
// viewer-dependent flags can be computed when possible.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := m.tokenSvc.ValidateAccessToken(tokenString); err == nil {
				c.Set(keyUserID, claims.UserID)
				c.Set(keyRoles, claims.Roles)
			}
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !slices.Contains(roles, requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID reads the authenticated user's ID from the context.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok
}

// GetViewerID reads the user ID as an optional viewer reference: nil for
// anonymous requests.
func GetViewerID(c echo.Context) *uuid.UUID {
	if userID, ok := GetUserID(c); ok {
		return &userID
	}

	return nil
}

// GetRoles reads the authenticated user's roles from the context.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(keyRoles).([]string)

	return roles, ok
}
