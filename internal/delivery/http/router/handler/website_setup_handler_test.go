package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"medify/internal/domain/entity"
	mockUC "medify/internal/mocks/usecase"
	"medify/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWebsiteSetupHandler_Get_Success(t *testing.T) {
	setupUC := mockUC.NewMockWebsiteSetupUsecase(t)
	h := &WebsiteSetupHandler{setupUC: setupUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	templateID := 2
	setupUC.EXPECT().
		GetOrCreate(mock.Anything, accountID).
		Return(&usecase.WebsiteSetupOutput{
			Setup: &entity.WebsiteSetup{
				ID:           uuid.New(),
				AccountID:    accountID,
				ReviewSystem: true,
				TemplateID:   &templateID,
				TotalPrice:   149.99,
			},
			Account: &entity.Account{
				ID:           accountID,
				Email:        "owner@example.com",
				Name:         "City Hospital",
				BusinessType: entity.BusinessTypeHospital,
			},
		}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/website-setups/", "")
	c.Set("accountID", accountID)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data WebsiteSetupDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.ReviewSystem)
	assert.False(t, body.Data.AIChatbot)
	require.NotNil(t, body.Data.TemplateID)
	assert.Equal(t, 2, *body.Data.TemplateID)
	assert.InDelta(t, 149.99, body.Data.TotalPrice, 0.001)
	assert.Equal(t, "owner@example.com", body.Data.User.Email)
}

func TestWebsiteSetupHandler_Get_Unauthenticated(t *testing.T) {
	setupUC := mockUC.NewMockWebsiteSetupUsecase(t)
	h := &WebsiteSetupHandler{setupUC: setupUC, logger: newDiscardLogger()}

	c, rec := newJSONContext(t, http.MethodGet, "/api/website-setups/", "")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebsiteSetupHandler_Update_PartialFields(t *testing.T) {
	setupUC := mockUC.NewMockWebsiteSetupUsecase(t)
	h := &WebsiteSetupHandler{setupUC: setupUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	setupUC.EXPECT().
		Update(mock.Anything, accountID, mock.AnythingOfType("*usecase.UpdateWebsiteSetupInput")).
		Run(func(ctx context.Context, id uuid.UUID, input *usecase.UpdateWebsiteSetupInput) {
			require.NotNil(t, input.AIChatbot)
			assert.True(t, *input.AIChatbot)
			// Absent fields stay nil so stored values survive.
			assert.Nil(t, input.ReviewSystem)
			assert.Nil(t, input.TemplateID)
			assert.False(t, input.ClearTemplate)
		}).
		Return(&usecase.WebsiteSetupOutput{
			Setup:   &entity.WebsiteSetup{ID: uuid.New(), AccountID: accountID, AIChatbot: true},
			Account: &entity.Account{ID: accountID},
		}, nil)

	c, rec := newJSONContext(t, http.MethodPatch, "/api/website-setups/", `{"ai_chatbot": true}`)
	c.Set("accountID", accountID)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebsiteSetupHandler_Update_TemplateID(t *testing.T) {
	setupUC := mockUC.NewMockWebsiteSetupUsecase(t)
	h := &WebsiteSetupHandler{setupUC: setupUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	setupUC.EXPECT().
		Update(mock.Anything, accountID, mock.AnythingOfType("*usecase.UpdateWebsiteSetupInput")).
		Run(func(ctx context.Context, id uuid.UUID, input *usecase.UpdateWebsiteSetupInput) {
			require.NotNil(t, input.TemplateID)
			assert.Equal(t, 7, *input.TemplateID)
			assert.False(t, input.ClearTemplate)
		}).
		Return(&usecase.WebsiteSetupOutput{
			Setup:   &entity.WebsiteSetup{ID: uuid.New(), AccountID: accountID},
			Account: &entity.Account{ID: accountID},
		}, nil)

	c, rec := newJSONContext(t, http.MethodPatch, "/api/website-setups/", `{"template_id": 7}`)
	c.Set("accountID", accountID)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebsiteSetupHandler_Update_TemplateIDExplicitNull(t *testing.T) {
	setupUC := mockUC.NewMockWebsiteSetupUsecase(t)
	h := &WebsiteSetupHandler{setupUC: setupUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	setupUC.EXPECT().
		Update(mock.Anything, accountID, mock.AnythingOfType("*usecase.UpdateWebsiteSetupInput")).
		Run(func(ctx context.Context, id uuid.UUID, input *usecase.UpdateWebsiteSetupInput) {
			assert.Nil(t, input.TemplateID)
			assert.True(t, input.ClearTemplate)
		}).
		Return(&usecase.WebsiteSetupOutput{
			Setup:   &entity.WebsiteSetup{ID: uuid.New(), AccountID: accountID},
			Account: &entity.Account{ID: accountID},
		}, nil)

	c, rec := newJSONContext(t, http.MethodPatch, "/api/website-setups/", `{"template_id": null}`)
	c.Set("accountID", accountID)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebsiteSetupHandler_Update_TemplateIDNotAnInteger(t *testing.T) {
	setupUC := mockUC.NewMockWebsiteSetupUsecase(t)
	h := &WebsiteSetupHandler{setupUC: setupUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	c, rec := newJSONContext(t, http.MethodPatch, "/api/website-setups/", `{"template_id": "classic"}`)
	c.Set("accountID", accountID)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "A valid integer is required.")
}
