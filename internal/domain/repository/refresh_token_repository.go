// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"medify/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// RefreshTokenRepository defines the interface for refresh token and session
// management operations.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, effectively ending a session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByAccountID removes all refresh tokens for an account.
	DeleteRefreshTokensByAccountID(ctx context.Context, accountID uuid.UUID) error

	// DeleteExpiredRefreshTokens removes all expired refresh tokens.
	// Intended for periodic cleanup.
	DeleteExpiredRefreshTokens(ctx context.Context) error
}
