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

// businessInfoRepository implements the domain.BusinessInfoRepository interface using GORM.
type businessInfoRepository struct {
	db *gorm.DB
}

// NewBusinessInfoRepository is the constructor for businessInfoRepository.
func NewBusinessInfoRepository(db *gorm.DB) repository.BusinessInfoRepository {
	return &businessInfoRepository{db: db}
}

// FindByWebsiteSetupID retrieves the profile owned by the given setup.
func (repo *businessInfoRepository) FindByWebsiteSetupID(ctx context.Context, setupID uuid.UUID) (*entity.BusinessInfo, error) {
	var infoM model.BusinessInfoModel
	if err := repo.db.WithContext(ctx).
		Where("website_setup_id = ?", setupID).
		First(&infoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessInfoNotFound
		}

		return nil, errors.Wrap(err, "failed to find business info by website setup id")
	}

	return toBusinessInfoDomain(&infoM), nil
}

// Create persists a new profile. The insert is ON CONFLICT DO NOTHING on the
// unique website_setup_id index; a lost get-or-create race surfaces as
// ErrDuplicateBusinessInfo without aborting the surrounding transaction, so
// callers can refetch the winner's row in the same transaction.
func (repo *businessInfoRepository) Create(ctx context.Context, info *entity.BusinessInfo) error {
	infoM := fromBusinessInfoDomain(info)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "website_setup_id"}},
			DoNothing: true,
		}).
		Create(infoM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBusinessInfo
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrWebsiteSetupNotFound.WrapMessage("invalid website setup reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business info")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateBusinessInfo
	}

	// Update the entity with generated values
	info.ID = infoM.ID
	info.CreatedAt = infoM.CreatedAt
	info.UpdatedAt = infoM.UpdatedAt

	return nil
}

// Update modifies an existing profile record. All writable columns are
// written so that empty strings, nil coordinates, and false flags survive.
func (repo *businessInfoRepository) Update(ctx context.Context, info *entity.BusinessInfo) error {
	infoM := fromBusinessInfoDomain(info)

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessInfoModel{}).
		Where("id = ?", info.ID).
		Updates(map[string]any{
			"name":          infoM.Name,
			"logo":          infoM.Logo,
			"about":         infoM.About,
			"address":       infoM.Address,
			"latitude":      infoM.Latitude,
			"longitude":     infoM.Longitude,
			"contact_phone": infoM.ContactPhone,
			"contact_email": infoM.ContactEmail,
			"website":       infoM.Website,
			"working_hours": infoM.WorkingHours,
			"is_published":  infoM.IsPublished,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business info")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessInfoNotFound
	}

	// Re-read so the entity reflects the updated_at the database just wrote.
	var updated model.BusinessInfoModel
	if err := repo.db.WithContext(ctx).Where("id = ?", info.ID).First(&updated).Error; err != nil {
		return errors.Wrap(err, "failed to reload business info after update")
	}
	*info = *toBusinessInfoDomain(&updated)

	return nil
}

// toBusinessInfoDomain maps the persistence model to the pure domain entity.
func toBusinessInfoDomain(infoM *model.BusinessInfoModel) *entity.BusinessInfo {
	return &entity.BusinessInfo{
		ID:             infoM.ID,
		WebsiteSetupID: infoM.WebsiteSetupID,
		Name:           infoM.Name,
		Logo:           infoM.Logo,
		About:          infoM.About,
		Address:        infoM.Address,
		Latitude:       infoM.Latitude,
		Longitude:      infoM.Longitude,
		ContactPhone:   infoM.ContactPhone,
		ContactEmail:   infoM.ContactEmail,
		Website:        infoM.Website,
		WorkingHours:   infoM.WorkingHours,
		IsPublished:    infoM.IsPublished,
		CreatedAt:      infoM.CreatedAt,
		UpdatedAt:      infoM.UpdatedAt,
	}
}

// fromBusinessInfoDomain maps the domain entity to the persistence model.
func fromBusinessInfoDomain(info *entity.BusinessInfo) *model.BusinessInfoModel {
	return &model.BusinessInfoModel{
		ID:             info.ID,
		WebsiteSetupID: info.WebsiteSetupID,
		Name:           info.Name,
		Logo:           info.Logo,
		About:          info.About,
		Address:        info.Address,
		Latitude:       info.Latitude,
		Longitude:      info.Longitude,
		ContactPhone:   info.ContactPhone,
		ContactEmail:   info.ContactEmail,
		Website:        info.Website,
		WorkingHours:   info.WorkingHours,
		IsPublished:    info.IsPublished,
		CreatedAt:      info.CreatedAt,
		UpdatedAt:      info.UpdatedAt,
	}
}
