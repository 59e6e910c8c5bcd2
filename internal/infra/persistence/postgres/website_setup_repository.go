package postgres

import (
	"context"

	"medify/internal/domain/entity"
	domainerrors "medify/internal/domain/errors"
	"medify/internal/domain/repository"
	"medify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// websiteSetupRepository implements the domain.WebsiteSetupRepository interface using GORM.
type websiteSetupRepository struct {
	db *gorm.DB
}

// NewWebsiteSetupRepository is the constructor for websiteSetupRepository.
func NewWebsiteSetupRepository(db *gorm.DB) repository.WebsiteSetupRepository {
	return &websiteSetupRepository{db: db}
}

// FindByAccountID retrieves the setup owned by the given account.
func (repo *websiteSetupRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.WebsiteSetup, error) {
	var setupM model.WebsiteSetupModel
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&setupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWebsiteSetupNotFound
		}

		return nil, errors.Wrap(err, "failed to find website setup by account id")
	}

	return toWebsiteSetupDomain(&setupM), nil
}

// Create persists a new setup. The insert is ON CONFLICT DO NOTHING on the
// unique account_id index; a lost get-or-create race surfaces as
// ErrDuplicateWebsiteSetup without aborting the surrounding transaction, so
// callers can refetch the winner's row in the same transaction.
func (repo *websiteSetupRepository) Create(ctx context.Context, setup *entity.WebsiteSetup) error {
	setupM := fromWebsiteSetupDomain(setup)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoNothing: true,
		}).
		Create(setupM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWebsiteSetup
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create website setup")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateWebsiteSetup
	}

	// Update the entity with generated values
	setup.ID = setupM.ID
	setup.CreatedAt = setupM.CreatedAt
	setup.UpdatedAt = setupM.UpdatedAt

	return nil
}

// Update modifies an existing setup record. All writable columns are written
// so that false and nil values survive the update.
func (repo *websiteSetupRepository) Update(ctx context.Context, setup *entity.WebsiteSetup) error {
	setupM := fromWebsiteSetupDomain(setup)

	result := repo.db.WithContext(ctx).
		Model(&model.WebsiteSetupModel{}).
		Where("id = ?", setup.ID).
		Updates(map[string]any{
			"review_system":       setupM.ReviewSystem,
			"ai_chatbot":          setupM.AIChatbot,
			"ambulance_ordering":  setupM.AmbulanceOrdering,
			"patient_portal":      setupM.PatientPortal,
			"prescription_refill": setupM.PrescriptionRefill,
			"template_id":         setupM.TemplateID,
			"is_paid":             setupM.IsPaid,
			"total_price":         setupM.TotalPrice,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update website setup")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWebsiteSetupNotFound
	}

	// Re-read so the entity reflects the updated_at the database just wrote.
	var updated model.WebsiteSetupModel
	if err := repo.db.WithContext(ctx).Where("id = ?", setup.ID).First(&updated).Error; err != nil {
		return errors.Wrap(err, "failed to reload website setup after update")
	}
	*setup = *toWebsiteSetupDomain(&updated)

	return nil
}

// toWebsiteSetupDomain maps the persistence model to the pure domain entity.
func toWebsiteSetupDomain(setupM *model.WebsiteSetupModel) *entity.WebsiteSetup {
	return &entity.WebsiteSetup{
		ID:                 setupM.ID,
		AccountID:          setupM.AccountID,
		ReviewSystem:       setupM.ReviewSystem,
		AIChatbot:          setupM.AIChatbot,
		AmbulanceOrdering:  setupM.AmbulanceOrdering,
		PatientPortal:      setupM.PatientPortal,
		PrescriptionRefill: setupM.PrescriptionRefill,
		TemplateID:         setupM.TemplateID,
		IsPaid:             setupM.IsPaid,
		TotalPrice:         setupM.TotalPrice,
		CreatedAt:          setupM.CreatedAt,
		UpdatedAt:          setupM.UpdatedAt,
	}
}

// fromWebsiteSetupDomain maps the domain entity to the persistence model.
func fromWebsiteSetupDomain(setup *entity.WebsiteSetup) *model.WebsiteSetupModel {
	return &model.WebsiteSetupModel{
		ID:                 setup.ID,
		AccountID:          setup.AccountID,
		ReviewSystem:       setup.ReviewSystem,
		AIChatbot:          setup.AIChatbot,
		AmbulanceOrdering:  setup.AmbulanceOrdering,
		PatientPortal:      setup.PatientPortal,
		PrescriptionRefill: setup.PrescriptionRefill,
		TemplateID:         setup.TemplateID,
		IsPaid:             setup.IsPaid,
		TotalPrice:         setup.TotalPrice,
		CreatedAt:          setup.CreatedAt,
		UpdatedAt:          setup.UpdatedAt,
	}
}
