package usecase

import (
	"context"

	"medify/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateWebsiteSetupInput defines the data for a partial website setup
// update. Nil fields are left untouched.
type UpdateWebsiteSetupInput struct {
	ReviewSystem       *bool
	AIChatbot          *bool
	AmbulanceOrdering  *bool
	PatientPortal      *bool
	PrescriptionRefill *bool
	TemplateID         *int
	ClearTemplate      bool
	IsPaid             *bool
	TotalPrice         *float64
}

// WebsiteSetupOutput pairs a website setup with its owning account so the
// delivery layer can render the nested account summary.
type WebsiteSetupOutput struct {
	Setup   *entity.WebsiteSetup
	Account *entity.Account
}

// WebsiteSetupUsecase defines the interface for website setup operations.
type WebsiteSetupUsecase interface {
	// GetOrCreate returns the caller's website setup, materializing a
	// default one when the account has none yet.
	GetOrCreate(ctx context.Context, accountID uuid.UUID) (*WebsiteSetupOutput, error)

	// Update applies a partial update to the caller's website setup,
	// creating a default one first when the account has none yet.
	Update(ctx context.Context, accountID uuid.UUID, input *UpdateWebsiteSetupInput) (*WebsiteSetupOutput, error)
}
