// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"medify/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email           string
	Password        string
	PasswordConfirm string
	Name            string
	BusinessType    string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput defines the data required to exchange a refresh token.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// TokenPair carries a freshly issued credential pair.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// SignupOutput returns the created account, its system-created website
// setup id, and a fresh credential pair.
type SignupOutput struct {
	Account        *entity.Account
	Tokens         TokenPair
	WebsiteSetupID uuid.UUID
}

// LoginOutput returns the account and a fresh credential pair.
type LoginOutput struct {
	Account *entity.Account
	Tokens  TokenPair
}

// RefreshTokenOutput returns the rotated credential pair.
type RefreshTokenOutput struct {
	Tokens TokenPair
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup registers a new account and creates its companion website
	// setup atomically.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Login verifies credentials and opens a new session.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken rotates a refresh token into a new credential pair.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout ends the session associated with the given refresh token.
	Logout(ctx context.Context, input *LogoutInput) error

	// CurrentAccount resolves the caller's own account.
	CurrentAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
