package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"medify/config"
	deliverycontext "medify/internal/delivery/context"
	"medify/internal/domain/entity"
	domainerrors "medify/internal/domain/errors"
	"medify/internal/domain/repository"
	"medify/internal/domain/service"
	"medify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// businessInfoService implements the BusinessInfoUsecase interface.
type businessInfoService struct {
	txManager   repository.TransactionManager
	logoStorage service.LogoStorage
	qrService   service.QRCodeService
	siteBaseURL string
	logger      *slog.Logger
}

// NewBusinessInfoService is the constructor for businessInfoService.
func NewBusinessInfoService(
	txManager repository.TransactionManager,
	logoStorage service.LogoStorage,
	qrService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BusinessInfoUsecase {
	siteBaseURL := ""
	if cfg.Site != nil {
		siteBaseURL = strings.TrimSuffix(cfg.Site.BaseURL, "/")
	}

	return &businessInfoService{
		txManager:   txManager,
		logoStorage: logoStorage,
		qrService:   qrService,
		siteBaseURL: siteBaseURL,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *businessInfoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the caller's business info. When the account has no website
// setup yet there is nothing to attach a profile to, so it returns
// (nil, nil) and the delivery layer renders an empty body.
func (srv *businessInfoService) Get(ctx context.Context, accountID uuid.UUID) (*entity.BusinessInfo, error) {
	var info *entity.BusinessInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		setup, err := repoFactory.WebsiteSetupRepo().FindByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrWebsiteSetupNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find website setup")
		}

		found, err := srv.getOrCreateInfo(ctx, repoFactory, setup.ID)
		if err != nil {
			return err
		}
		info = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to get business info", "error", err, "accountID", accountID)

		return nil, err
	}

	return info, nil
}

// Create creates the caller's business info record exactly once. A second
// create attempt is rejected and the caller is pointed at the update
// endpoint instead.
func (srv *businessInfoService) Create(ctx context.Context, accountID uuid.UUID, input *usecase.UpsertBusinessInfoInput) (*entity.BusinessInfo, error) {
	var info *entity.BusinessInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		setup, err := srv.requireSetup(ctx, repoFactory, accountID)
		if err != nil {
			return err
		}

		infoRepo := repoFactory.BusinessInfoRepo()
		if _, err := infoRepo.FindByWebsiteSetupID(ctx, setup.ID); err == nil {
			return domainerrors.ErrBusinessInfoExists
		} else if !errors.Is(err, repository.ErrBusinessInfoNotFound) {
			return errors.Wrap(err, "failed to find business info")
		}

		newInfo := &entity.BusinessInfo{WebsiteSetupID: setup.ID, WorkingHours: entity.WorkingHours{}}
		applyInfoChanges(newInfo, input)

		if err := infoRepo.Create(ctx, newInfo); err != nil {
			// A concurrent create got there first.
			if errors.Is(err, repository.ErrDuplicateBusinessInfo) {
				return domainerrors.ErrBusinessInfoExists
			}

			return errors.WithStack(err)
		}
		info = newInfo

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create business info", "error", err.Error(), "accountID", accountID)

		return nil, err
	}
	srv.log(ctx).Info("Business info created", "accountID", accountID, "businessInfoID", info.ID)

	return info, nil
}

// Update applies a partial update, materializing an empty record first when
// none exists yet.
func (srv *businessInfoService) Update(ctx context.Context, accountID uuid.UUID, input *usecase.UpsertBusinessInfoInput) (*entity.BusinessInfo, error) {
	return srv.mutate(ctx, accountID, func(info *entity.BusinessInfo) {
		applyInfoChanges(info, input)
	})
}

// Publish marks the caller's business info as published. Re-publishing an
// already published record changes nothing and still succeeds.
func (srv *businessInfoService) Publish(ctx context.Context, accountID uuid.UUID) (*entity.BusinessInfo, error) {
	return srv.mutate(ctx, accountID, func(info *entity.BusinessInfo) {
		info.IsPublished = true
	})
}

// UploadLogo stores the new logo image first, then swaps the stored key.
// The previous image is deleted best-effort once the swap is committed.
func (srv *businessInfoService) UploadLogo(ctx context.Context, accountID uuid.UUID, filename, contentType string, body io.Reader) (*entity.BusinessInfo, error) {
	key, err := srv.logoStorage.Save(ctx, filename, contentType, body)
	if err != nil {
		srv.log(ctx).Error("Failed to store logo image", "error", err, "accountID", accountID)

		return nil, errors.Wrap(domainerrors.ErrLogoUploadFailed, err.Error())
	}

	var oldKey string
	info, err := srv.mutate(ctx, accountID, func(info *entity.BusinessInfo) {
		oldKey = info.Logo
		info.Logo = key
	})
	if err != nil {
		// The profile mutation failed, so the freshly stored image is an orphan.
		if delErr := srv.logoStorage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to delete orphaned logo", "error", delErr, "key", key)
		}

		return nil, err
	}

	if oldKey != "" && oldKey != key {
		if delErr := srv.logoStorage.Delete(ctx, oldKey); delErr != nil {
			srv.log(ctx).Warn("Failed to delete replaced logo", "error", delErr, "key", oldKey)
		}
	}

	return info, nil
}

// SiteQR renders a QR code PNG pointing at the caller's public site URL.
func (srv *businessInfoService) SiteQR(ctx context.Context, accountID uuid.UUID) ([]byte, error) {
	var setupID uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		setup, err := srv.requireSetup(ctx, repoFactory, accountID)
		if err != nil {
			return err
		}
		setupID = setup.ID

		return nil
	})
	if err != nil {
		return nil, err
	}

	siteURL := srv.siteBaseURL + "/sites/" + setupID.String()

	png, err := srv.qrService.GenerateSiteQR(siteURL)
	if err != nil {
		srv.log(ctx).Error("Failed to generate site QR code", "error", err, "accountID", accountID)

		return nil, errors.Wrap(err, "failed to generate site QR code")
	}

	return png, nil
}

// LogoURL resolves a stored logo key into a public URL.
func (srv *businessInfoService) LogoURL(key string) string {
	return srv.logoStorage.PublicURL(key)
}

// mutate loads (or materializes) the caller's business info, applies the
// change, and persists it, all inside one transaction.
func (srv *businessInfoService) mutate(ctx context.Context, accountID uuid.UUID, change func(*entity.BusinessInfo)) (*entity.BusinessInfo, error) {
	var info *entity.BusinessInfo

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		setup, err := srv.requireSetup(ctx, repoFactory, accountID)
		if err != nil {
			return err
		}

		current, err := srv.getOrCreateInfo(ctx, repoFactory, setup.ID)
		if err != nil {
			return err
		}

		change(current)

		if err := repoFactory.BusinessInfoRepo().Update(ctx, current); err != nil {
			return errors.WithStack(err)
		}
		info = current

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update business info", "error", err, "accountID", accountID)

		return nil, err
	}

	return info, nil
}

// requireSetup loads the caller's website setup, materializing a default one
// when missing so a partially provisioned account can still manage its
// profile.
func (srv *businessInfoService) requireSetup(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID) (*entity.WebsiteSetup, error) {
	setupRepo := repoFactory.WebsiteSetupRepo()

	setup, err := setupRepo.FindByAccountID(ctx, accountID)
	if err == nil {
		return setup, nil
	}
	if !errors.Is(err, repository.ErrWebsiteSetupNotFound) {
		return nil, errors.Wrap(err, "failed to find website setup")
	}

	newSetup := &entity.WebsiteSetup{AccountID: accountID}
	if err := setupRepo.Create(ctx, newSetup); err != nil {
		if errors.Is(err, repository.ErrDuplicateWebsiteSetup) {
			existing, findErr := setupRepo.FindByAccountID(ctx, accountID)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to refetch website setup")
			}

			return existing, nil
		}

		return nil, errors.WithStack(err)
	}

	return newSetup, nil
}

// getOrCreateInfo loads the setup's business info, creating an empty record
// when absent. A lost create race is resolved by refetching the winner's row.
func (srv *businessInfoService) getOrCreateInfo(ctx context.Context, repoFactory repository.RepositoryFactory, setupID uuid.UUID) (*entity.BusinessInfo, error) {
	infoRepo := repoFactory.BusinessInfoRepo()

	info, err := infoRepo.FindByWebsiteSetupID(ctx, setupID)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, repository.ErrBusinessInfoNotFound) {
		return nil, errors.Wrap(err, "failed to find business info")
	}

	newInfo := &entity.BusinessInfo{WebsiteSetupID: setupID, WorkingHours: entity.WorkingHours{}}
	if err := infoRepo.Create(ctx, newInfo); err != nil {
		if errors.Is(err, repository.ErrDuplicateBusinessInfo) {
			existing, findErr := infoRepo.FindByWebsiteSetupID(ctx, setupID)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to refetch business info")
			}

			return existing, nil
		}

		return nil, errors.WithStack(err)
	}

	return newInfo, nil
}

// applyInfoChanges merges the present input fields into the entity.
func applyInfoChanges(info *entity.BusinessInfo, input *usecase.UpsertBusinessInfoInput) {
	if input.Name != nil {
		info.Name = *input.Name
	}
	if input.About != nil {
		info.About = *input.About
	}
	if input.Address != nil {
		info.Address = *input.Address
	}
	if input.Latitude != nil {
		info.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		info.Longitude = input.Longitude
	}
	if input.ContactPhone != nil {
		info.ContactPhone = *input.ContactPhone
	}
	if input.ContactEmail != nil {
		info.ContactEmail = *input.ContactEmail
	}
	if input.Website != nil {
		info.Website = *input.Website
	}
	if input.WorkingHours != nil {
		info.WorkingHours = input.WorkingHours
	}
	if input.IsPublished != nil {
		info.IsPublished = *input.IsPublished
	}
}
