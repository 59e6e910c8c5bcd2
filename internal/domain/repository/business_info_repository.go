// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"medify/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessInfoNotFound is returned when no profile exists for the setup.
var ErrBusinessInfoNotFound = errors.New("business info not found")

// ErrDuplicateBusinessInfo is returned when the one-profile-per-setup
// constraint is violated.
var ErrDuplicateBusinessInfo = errors.New("business info already exists")

// BusinessInfoRepository defines persistence operations for business
// profiles. Lookups are scoped by the owning website setup.
type BusinessInfoRepository interface {
	// FindByWebsiteSetupID retrieves the profile owned by the given setup.
	FindByWebsiteSetupID(ctx context.Context, setupID uuid.UUID) (*entity.BusinessInfo, error)

	// Create persists a new profile. Returns ErrDuplicateBusinessInfo when
	// the setup already owns one.
	Create(ctx context.Context, info *entity.BusinessInfo) error

	// Update modifies an existing profile.
	Update(ctx context.Context, info *entity.BusinessInfo) error
}
