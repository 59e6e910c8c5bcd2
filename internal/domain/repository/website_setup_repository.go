// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"medify/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWebsiteSetupNotFound is returned when no setup exists for the account.
var ErrWebsiteSetupNotFound = errors.New("website setup not found")

// ErrDuplicateWebsiteSetup is returned when the one-setup-per-account
// constraint is violated, i.e. a concurrent create got there first.
var ErrDuplicateWebsiteSetup = errors.New("website setup already exists")

// WebsiteSetupRepository defines persistence operations for website setups.
// Lookups are always scoped by the owning account, never by a
// client-supplied setup id.
type WebsiteSetupRepository interface {
	// FindByAccountID retrieves the setup owned by the given account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.WebsiteSetup, error)

	// Create persists a new setup. Returns ErrDuplicateWebsiteSetup when
	// the account already owns one.
	Create(ctx context.Context, setup *entity.WebsiteSetup) error

	// Update modifies an existing setup.
	Update(ctx context.Context, setup *entity.WebsiteSetup) error
}
