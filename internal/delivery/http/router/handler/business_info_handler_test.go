package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"medify/internal/domain/entity"
	domainerrors "medify/internal/domain/errors"
	mockUC "medify/internal/mocks/usecase"
	"medify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBusinessInfoHandler_Get_NoSetupReturnsEmptyBody(t *testing.T) {
	infoUC := mockUC.NewMockBusinessInfoUsecase(t)
	h := &BusinessInfoHandler{infoUC: infoUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	infoUC.EXPECT().Get(mock.Anything, accountID).Return(nil, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/business-info/", "")
	c.Set("accountID", accountID)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "null", string(body.Data))
}

func TestBusinessInfoHandler_Get_WithLogoResolvesURL(t *testing.T) {
	infoUC := mockUC.NewMockBusinessInfoUsecase(t)
	h := &BusinessInfoHandler{infoUC: infoUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	info := &entity.BusinessInfo{
		ID:           uuid.New(),
		Name:         "City Hospital",
		Logo:         "logos/a.png",
		WorkingHours: entity.WorkingHours{"monday": {Open: "08:00", Close: "18:00"}},
	}
	infoUC.EXPECT().Get(mock.Anything, accountID).Return(info, nil)
	infoUC.EXPECT().LogoURL("logos/a.png").Return("https://cdn.example.com/logos/a.png")

	c, rec := newJSONContext(t, http.MethodGet, "/api/business-info/", "")
	c.Set("accountID", accountID)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data BusinessInfoDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "City Hospital", body.Data.Name)
	require.NotNil(t, body.Data.LogoURL)
	assert.Equal(t, "https://cdn.example.com/logos/a.png", *body.Data.LogoURL)
	assert.Contains(t, body.Data.WorkingHours, "monday")
}

func TestBusinessInfoHandler_Get_NoLogoYieldsNullURL(t *testing.T) {
	infoUC := mockUC.NewMockBusinessInfoUsecase(t)
	h := &BusinessInfoHandler{infoUC: infoUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	infoUC.EXPECT().Get(mock.Anything, accountID).Return(&entity.BusinessInfo{ID: uuid.New()}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/business-info/", "")
	c.Set("accountID", accountID)

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"logo_url":null`)
	// A record without hours still renders an object, not null.
	assert.Contains(t, rec.Body.String(), `"working_hours":{}`)
}

func TestBusinessInfoHandler_Create_Created(t *testing.T) {
	infoUC := mockUC.NewMockBusinessInfoUsecase(t)
	h := &BusinessInfoHandler{infoUC: infoUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	infoUC.EXPECT().
		Create(mock.Anything, accountID, mock.AnythingOfType("*usecase.UpsertBusinessInfoInput")).
		Run(func(ctx context.Context, id uuid.UUID, input *usecase.UpsertBusinessInfoInput) {
			require.NotNil(t, input.Name)
			assert.Equal(t, "City Hospital", *input.Name)
			require.NotNil(t, input.Latitude)
			assert.InDelta(t, 40.7128, *input.Latitude, 0.0001)
			assert.Nil(t, input.Longitude)
		}).
		Return(&entity.BusinessInfo{ID: uuid.New(), Name: "City Hospital"}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/business-info/", `{
		"name": "City Hospital",
		"latitude": 40.7128
	}`)
	c.Set("accountID", accountID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "City Hospital")
}

func TestBusinessInfoHandler_Create_AlreadyExists(t *testing.T) {
	infoUC := mockUC.NewMockBusinessInfoUsecase(t)
	h := &BusinessInfoHandler{infoUC: infoUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	infoUC.EXPECT().
		Create(mock.Anything, accountID, mock.AnythingOfType("*usecase.UpsertBusinessInfoInput")).
		Return(nil, domainerrors.ErrBusinessInfoExists)

	c, rec := newJSONContext(t, http.MethodPost, "/api/business-info/", `{"name": "City Hospital"}`)
	c.Set("accountID", accountID)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Business info already exists. Use update endpoint.")
}

func TestBusinessInfoHandler_Update_Success(t *testing.T) {
	infoUC := mockUC.NewMockBusinessInfoUsecase(t)
	h := &BusinessInfoHandler{infoUC: infoUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	infoUC.EXPECT().
		Update(mock.Anything, accountID, mock.AnythingOfType("*usecase.UpsertBusinessInfoInput")).
		Return(&entity.BusinessInfo{ID: uuid.New(), About: "Updated."}, nil)

	c, rec := newJSONContext(t, http.MethodPatch, "/api/business-info/", `{"about": "Updated."}`)
	c.Set("accountID", accountID)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Updated.")
}

func TestBusinessInfoHandler_Publish_Success(t *testing.T) {
	infoUC := mockUC.NewMockBusinessInfoUsecase(t)
	h := &BusinessInfoHandler{infoUC: infoUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	infoUC.EXPECT().
		Publish(mock.Anything, accountID).
		Return(&entity.BusinessInfo{ID: uuid.New(), IsPublished: true}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/business-info/publish/", "")
	c.Set("accountID", accountID)

	require.NoError(t, h.Publish(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_published":true`)
}

// newMultipartContext builds an Echo context around a multipart form with a
// single "logo" file part.
func newMultipartContext(t *testing.T, fieldName, filename string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/business-info/logo/", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestBusinessInfoHandler_UploadLogo_Success(t *testing.T) {
	infoUC := mockUC.NewMockBusinessInfoUsecase(t)
	h := &BusinessInfoHandler{infoUC: infoUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	infoUC.EXPECT().
		UploadLogo(mock.Anything, accountID, "logo.png", mock.AnythingOfType("string"), mock.Anything).
		Return(&entity.BusinessInfo{ID: uuid.New(), Logo: "logos/new.png"}, nil)
	infoUC.EXPECT().LogoURL("logos/new.png").Return("https://cdn.example.com/logos/new.png")

	c, rec := newMultipartContext(t, "logo", "logo.png", []byte("png bytes"))
	c.Set("accountID", accountID)

	require.NoError(t, h.UploadLogo(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "logos/new.png")
}

func TestBusinessInfoHandler_UploadLogo_NoFile(t *testing.T) {
	infoUC := mockUC.NewMockBusinessInfoUsecase(t)
	h := &BusinessInfoHandler{infoUC: infoUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	c, rec := newMultipartContext(t, "attachment", "logo.png", []byte("png bytes"))
	c.Set("accountID", accountID)

	require.NoError(t, h.UploadLogo(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file was submitted.")
}

func TestBusinessInfoHandler_SiteQR_Success(t *testing.T) {
	infoUC := mockUC.NewMockBusinessInfoUsecase(t)
	h := &BusinessInfoHandler{infoUC: infoUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	infoUC.EXPECT().SiteQR(mock.Anything, accountID).Return(png, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/business-info/qrcode/", "")
	c.Set("accountID", accountID)

	require.NoError(t, h.SiteQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
