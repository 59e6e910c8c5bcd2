package usecase

import (
	"context"
	"io"

	"medify/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertBusinessInfoInput defines the writable business info fields.
// It serves both the create and the partial update operations; on update,
// nil fields are left untouched.
type UpsertBusinessInfoInput struct {
	Name         *string
	About        *string
	Address      *string
	Latitude     *float64
	Longitude    *float64
	ContactPhone *string
	ContactEmail *string
	Website      *string
	WorkingHours entity.WorkingHours
	IsPublished  *bool
}

// BusinessInfoUsecase defines the interface for business info operations.
type BusinessInfoUsecase interface {
	// Get returns the caller's business info, materializing an empty
	// record when the website setup exists but has no business info yet.
	// It returns (nil, nil) when the account has no website setup.
	Get(ctx context.Context, accountID uuid.UUID) (*entity.BusinessInfo, error)

	// Create creates the caller's business info record. It fails when a
	// record already exists for the caller's website setup.
	Create(ctx context.Context, accountID uuid.UUID, input *UpsertBusinessInfoInput) (*entity.BusinessInfo, error)

	// Update applies a partial update to the caller's business info,
	// materializing an empty record first when none exists yet.
	Update(ctx context.Context, accountID uuid.UUID, input *UpsertBusinessInfoInput) (*entity.BusinessInfo, error)

	// Publish marks the caller's business info as published. Publishing
	// an already published record is a no-op.
	Publish(ctx context.Context, accountID uuid.UUID) (*entity.BusinessInfo, error)

	// UploadLogo stores a new logo image and attaches it to the caller's
	// business info, replacing any previous logo.
	UploadLogo(ctx context.Context, accountID uuid.UUID, filename, contentType string, body io.Reader) (*entity.BusinessInfo, error)

	// SiteQR renders a QR code PNG pointing at the caller's public site.
	SiteQR(ctx context.Context, accountID uuid.UUID) ([]byte, error)

	// LogoURL resolves a stored logo key into a public URL. It returns
	// an empty string for an empty key.
	LogoURL(key string) string
}
