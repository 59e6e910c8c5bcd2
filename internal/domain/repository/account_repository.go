// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"medify/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when the email unique constraint is violated.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account. Returns ErrDuplicateEmail when the
	// email is already taken.
	Create(ctx context.Context, account *entity.Account) error
}
