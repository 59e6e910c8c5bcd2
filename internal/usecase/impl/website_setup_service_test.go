package impl

import (
	"context"
	"testing"
	"time"

	"medify/internal/domain/entity"
	domainerrors "medify/internal/domain/errors"
	"medify/internal/domain/repository"
	mockRepo "medify/internal/mocks/repository"
	"medify/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// websiteSetupServiceFixtures holds all test dependencies for website setup service tests.
type websiteSetupServiceFixtures struct {
	service   usecase.WebsiteSetupUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestWebsiteSetupService(t *testing.T) websiteSetupServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewWebsiteSetupService(txManager, newDiscardLogger())

	return websiteSetupServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func TestWebsiteSetupService_GetOrCreate_Existing(t *testing.T) {
	fx := createTestWebsiteSetupService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "owner@example.com"}
	setup := &entity.WebsiteSetup{ID: uuid.New(), AccountID: accountID, ReviewSystem: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSetupRepo := mockRepo.NewMockWebsiteSetupRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().WebsiteSetupRepo().Return(mockSetupRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockSetupRepo.EXPECT().FindByAccountID(ctx, accountID).Return(setup, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.GetOrCreate(ctx, accountID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, setup, output.Setup)
	assert.Equal(t, account, output.Account)
}

func TestWebsiteSetupService_GetOrCreate_CreatesDefault(t *testing.T) {
	fx := createTestWebsiteSetupService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "owner@example.com"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSetupRepo := mockRepo.NewMockWebsiteSetupRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().WebsiteSetupRepo().Return(mockSetupRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockSetupRepo.EXPECT().FindByAccountID(ctx, accountID).Return(nil, repository.ErrWebsiteSetupNotFound)
			mockSetupRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.WebsiteSetup")).
				Run(func(ctx context.Context, setup *entity.WebsiteSetup) {
					assert.Equal(t, accountID, setup.AccountID)
					assert.False(t, setup.IsPaid)
					assert.Nil(t, setup.TemplateID)
					setup.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.GetOrCreate(ctx, accountID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, accountID, output.Setup.AccountID)
	assert.NotEqual(t, uuid.Nil, output.Setup.ID)
}

func TestWebsiteSetupService_GetOrCreate_LostRaceRefetches(t *testing.T) {
	fx := createTestWebsiteSetupService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID}
	winner := &entity.WebsiteSetup{ID: uuid.New(), AccountID: accountID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSetupRepo := mockRepo.NewMockWebsiteSetupRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().WebsiteSetupRepo().Return(mockSetupRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockSetupRepo.EXPECT().FindByAccountID(ctx, accountID).Return(nil, repository.ErrWebsiteSetupNotFound).Once()
			mockSetupRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.WebsiteSetup")).
				Return(repository.ErrDuplicateWebsiteSetup)
			mockSetupRepo.EXPECT().FindByAccountID(ctx, accountID).Return(winner, nil).Once()

			return fn(mockFactory)
		})

	output, err := fx.service.GetOrCreate(ctx, accountID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, winner, output.Setup)
}

func TestWebsiteSetupService_GetOrCreate_AccountNotFound(t *testing.T) {
	fx := createTestWebsiteSetupService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSetupRepo := mockRepo.NewMockWebsiteSetupRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().WebsiteSetupRepo().Return(mockSetupRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.GetOrCreate(ctx, accountID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestWebsiteSetupService_Update_PartialMerge(t *testing.T) {
	fx := createTestWebsiteSetupService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID}
	templateID := 3
	existing := &entity.WebsiteSetup{
		ID:           uuid.New(),
		AccountID:    accountID,
		ReviewSystem: true,
		AIChatbot:    true,
		TemplateID:   &templateID,
		TotalPrice:   149.99,
	}

	input := &usecase.UpdateWebsiteSetupInput{
		AIChatbot:     boolPtr(false),
		PatientPortal: boolPtr(true),
		IsPaid:        boolPtr(true),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSetupRepo := mockRepo.NewMockWebsiteSetupRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().WebsiteSetupRepo().Return(mockSetupRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockSetupRepo.EXPECT().FindByAccountID(ctx, accountID).Return(existing, nil)
			mockSetupRepo.EXPECT().Update(ctx, existing).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Update(ctx, accountID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	// Touched fields take the new values.
	assert.False(t, output.Setup.AIChatbot)
	assert.True(t, output.Setup.PatientPortal)
	assert.True(t, output.Setup.IsPaid)
	// Untouched fields keep their stored values.
	assert.True(t, output.Setup.ReviewSystem)
	require.NotNil(t, output.Setup.TemplateID)
	assert.Equal(t, 3, *output.Setup.TemplateID)
	assert.InDelta(t, 149.99, output.Setup.TotalPrice, 0.001)
}

func TestWebsiteSetupService_Update_SetAndClearTemplate(t *testing.T) {
	fx := createTestWebsiteSetupService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID}

	expectLoad := func(existing *entity.WebsiteSetup) {
		fx.txManager.EXPECT().
			Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				mockFactory := mockRepo.NewMockRepositoryFactory(t)
				mockAccountRepo := mockRepo.NewMockAccountRepository(t)
				mockSetupRepo := mockRepo.NewMockWebsiteSetupRepository(t)

				mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
				mockFactory.EXPECT().WebsiteSetupRepo().Return(mockSetupRepo)

				mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
				mockSetupRepo.EXPECT().FindByAccountID(ctx, accountID).Return(existing, nil)
				mockSetupRepo.EXPECT().Update(ctx, existing).Return(nil)

				return fn(mockFactory)
			}).
			Once()
	}

	// Picking a template.
	existing := &entity.WebsiteSetup{ID: uuid.New(), AccountID: accountID}
	expectLoad(existing)

	output, err := fx.service.Update(ctx, accountID, &usecase.UpdateWebsiteSetupInput{TemplateID: intPtr(5)})
	require.NoError(t, err)
	require.NotNil(t, output.Setup.TemplateID)
	assert.Equal(t, 5, *output.Setup.TemplateID)

	// An explicit null clears the selection.
	expectLoad(existing)

	output, err = fx.service.Update(ctx, accountID, &usecase.UpdateWebsiteSetupInput{ClearTemplate: true})
	require.NoError(t, err)
	assert.Nil(t, output.Setup.TemplateID)
}

func TestWebsiteSetupService_Update_ReturnsRefreshedTimestamp(t *testing.T) {
	fx := createTestWebsiteSetupService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID}
	staleTime := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	freshTime := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	existing := &entity.WebsiteSetup{
		ID:        uuid.New(),
		AccountID: accountID,
		UpdatedAt: staleTime,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSetupRepo := mockRepo.NewMockWebsiteSetupRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().WebsiteSetupRepo().Return(mockSetupRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockSetupRepo.EXPECT().FindByAccountID(ctx, accountID).Return(existing, nil)
			// The repository reloads the row after writing, so the entity it
			// hands back carries the database-assigned updated_at.
			mockSetupRepo.EXPECT().Update(ctx, existing).
				Run(func(ctx context.Context, setup *entity.WebsiteSetup) {
					setup.UpdatedAt = freshTime
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Update(ctx, accountID, &usecase.UpdateWebsiteSetupInput{IsPaid: boolPtr(true)})

	require.NoError(t, err)
	assert.Equal(t, freshTime, output.Setup.UpdatedAt)
}
