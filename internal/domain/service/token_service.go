package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims carries the validated content of a token.
type TokenClaims struct {
	AccountID uuid.UUID
	Type      string // "access" or "refresh"
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given account.
	GenerateTokens(accountID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token string and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// ValidateRefreshToken checks a refresh token string and returns its claims.
	ValidateRefreshToken(tokenString string) (*TokenClaims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
