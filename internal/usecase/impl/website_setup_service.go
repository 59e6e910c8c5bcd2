package impl

import (
	"context"
	"log/slog"

	deliverycontext "medify/internal/delivery/context"
	"medify/internal/domain/entity"
	domainerrors "medify/internal/domain/errors"
	"medify/internal/domain/repository"
	"medify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// websiteSetupService implements the WebsiteSetupUsecase interface.
type websiteSetupService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewWebsiteSetupService is the constructor for websiteSetupService.
func NewWebsiteSetupService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.WebsiteSetupUsecase {
	return &websiteSetupService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *websiteSetupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrCreate returns the caller's website setup, materializing a default
// one when missing. Accounts normally receive their setup at signup, but a
// missing record (e.g. after a partial import) heals here transparently.
func (srv *websiteSetupService) GetOrCreate(ctx context.Context, accountID uuid.UUID) (*usecase.WebsiteSetupOutput, error) {
	var out *usecase.WebsiteSetupOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		setup, account, err := srv.getOrCreateSetup(ctx, repoFactory, accountID)
		if err != nil {
			return err
		}
		out = &usecase.WebsiteSetupOutput{Setup: setup, Account: account}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to get website setup", "error", err, "accountID", accountID)

		return nil, err
	}

	return out, nil
}

// Update applies a partial update: only the fields present in the input are
// written, everything else keeps its stored value.
func (srv *websiteSetupService) Update(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateWebsiteSetupInput) (*usecase.WebsiteSetupOutput, error) {
	var out *usecase.WebsiteSetupOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		setup, account, err := srv.getOrCreateSetup(ctx, repoFactory, accountID)
		if err != nil {
			return err
		}

		applySetupChanges(setup, input)

		if err := repoFactory.WebsiteSetupRepo().Update(ctx, setup); err != nil {
			return errors.WithStack(err)
		}
		out = &usecase.WebsiteSetupOutput{Setup: setup, Account: account}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update website setup", "error", err, "accountID", accountID)

		return nil, err
	}
	srv.log(ctx).Debug("Website setup updated", "accountID", accountID)

	return out, nil
}

// getOrCreateSetup loads the account and its setup, creating the setup when
// absent. A lost create race is resolved by refetching the winner's row.
func (srv *websiteSetupService) getOrCreateSetup(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID) (*entity.WebsiteSetup, *entity.Account, error) {
	accountRepo := repoFactory.AccountRepo()
	setupRepo := repoFactory.WebsiteSetupRepo()

	account, err := accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil, domainerrors.ErrAccountNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find account")
	}

	setup, err := setupRepo.FindByAccountID(ctx, accountID)
	if err == nil {
		return setup, account, nil
	}
	if !errors.Is(err, repository.ErrWebsiteSetupNotFound) {
		return nil, nil, errors.Wrap(err, "failed to find website setup")
	}

	newSetup := &entity.WebsiteSetup{AccountID: accountID}
	if err := setupRepo.Create(ctx, newSetup); err != nil {
		if errors.Is(err, repository.ErrDuplicateWebsiteSetup) {
			// A concurrent request created it first; its row wins.
			existing, findErr := setupRepo.FindByAccountID(ctx, accountID)
			if findErr != nil {
				return nil, nil, errors.Wrap(findErr, "failed to refetch website setup")
			}

			return existing, account, nil
		}

		return nil, nil, errors.WithStack(err)
	}

	return newSetup, account, nil
}

// applySetupChanges merges the present input fields into the entity.
func applySetupChanges(setup *entity.WebsiteSetup, input *usecase.UpdateWebsiteSetupInput) {
	if input.ReviewSystem != nil {
		setup.ReviewSystem = *input.ReviewSystem
	}
	if input.AIChatbot != nil {
		setup.AIChatbot = *input.AIChatbot
	}
	if input.AmbulanceOrdering != nil {
		setup.AmbulanceOrdering = *input.AmbulanceOrdering
	}
	if input.PatientPortal != nil {
		setup.PatientPortal = *input.PatientPortal
	}
	if input.PrescriptionRefill != nil {
		setup.PrescriptionRefill = *input.PrescriptionRefill
	}
	if input.TemplateID != nil {
		setup.TemplateID = input.TemplateID
	} else if input.ClearTemplate {
		setup.TemplateID = nil
	}
	if input.IsPaid != nil {
		setup.IsPaid = *input.IsPaid
	}
	if input.TotalPrice != nil {
		setup.TotalPrice = *input.TotalPrice
	}
}
