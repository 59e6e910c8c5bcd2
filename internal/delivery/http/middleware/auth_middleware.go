// Package middleware contains HTTP middleware for the API server.
package middleware

import (
	"strings"

	"medify/internal/delivery/http/response"
	"medify/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// keyAccountID is the echo.Context key under which Authenticate stores the
// caller's account id.
const keyAccountID = "accountID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the caller's
// account id on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyAccountID, claims.AccountID)

		return next(c)
	}
}

// GetAccountID extracts the authenticated account id set by Authenticate.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyAccountID).(uuid.UUID)

	return id, ok
}
