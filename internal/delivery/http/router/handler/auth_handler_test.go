package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"medify/internal/domain/entity"
	domainerrors "medify/internal/domain/errors"
	mockUC "medify/internal/mocks/usecase"
	"medify/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Signup_Created(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: authUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	setupID := uuid.New()
	authUC.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Run(func(ctx context.Context, input *usecase.SignupInput) {
			assert.Equal(t, "owner@example.com", input.Email)
			assert.Equal(t, "hospital", input.BusinessType)
		}).
		Return(&usecase.SignupOutput{
			Account: &entity.Account{
				ID:           accountID,
				Email:        "owner@example.com",
				Name:         "City Hospital",
				BusinessType: entity.BusinessTypeHospital,
				CreatedAt:    time.Now(),
			},
			Tokens:         usecase.TokenPair{Access: "access-token", Refresh: "refresh-token"},
			WebsiteSetupID: setupID,
		}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/signup/", `{
		"email": "owner@example.com",
		"password": "Password123!",
		"password_confirm": "Password123!",
		"name": "City Hospital",
		"business_type": "hospital"
	}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data SignupResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "owner@example.com", body.Data.User.Email)
	assert.Equal(t, "hospital", body.Data.User.BusinessType)
	assert.Equal(t, "access-token", body.Data.Tokens.Access)
	assert.Equal(t, "refresh-token", body.Data.Tokens.Refresh)
	assert.Equal(t, setupID.String(), body.Data.WebsiteSetupID)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: authUC, logger: newDiscardLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/signup/", `{
		"password": "Password123!",
		"password_confirm": "Password123!"
	}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code    string              `json:"code"`
			Details map[string][]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, []string{"This field is required."}, body.Error.Details["email"])
	assert.Equal(t, []string{"This field is required."}, body.Error.Details["name"])
	assert.Equal(t, []string{"This field is required."}, body.Error.Details["business_type"])
}

func TestAuthHandler_Signup_InvalidBusinessType(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: authUC, logger: newDiscardLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/signup/", `{
		"email": "owner@example.com",
		"password": "Password123!",
		"password_confirm": "Password123!",
		"name": "City Hospital",
		"business_type": "clinic"
	}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Must be one of: hospital, pharmacy.")
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: authUC, logger: newDiscardLogger()}

	authUC.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, domainerrors.NewFieldError("email", "user with this email already exists."))

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/signup/", `{
		"email": "owner@example.com",
		"password": "Password123!",
		"password_confirm": "Password123!",
		"name": "City Hospital",
		"business_type": "hospital"
	}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "user with this email already exists.")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: authUC, logger: newDiscardLogger()}

	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		Name:         "City Hospital",
		BusinessType: entity.BusinessTypeHospital,
	}
	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "owner@example.com", Password: "Password123!"}).
		Return(&usecase.LoginOutput{
			Account: account,
			Tokens:  usecase.TokenPair{Access: "access-token", Refresh: "refresh-token"},
		}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login/", `{
		"email": "owner@example.com",
		"password": "Password123!"
	}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, account.Email, body.Data.User.Email)
	assert.Equal(t, "access-token", body.Data.Tokens.Access)
}

func TestAuthHandler_Login_MissingCredentials(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: authUC, logger: newDiscardLogger()}

	for _, body := range []string{
		`{}`,
		`{"email": "owner@example.com"}`,
		`{"password": "Password123!"}`,
	} {
		c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login/", body)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email and password are required")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: authUC, logger: newDiscardLogger()}

	authUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/login/", `{
		"email": "owner@example.com",
		"password": "wrong"
	}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestAuthHandler_Me_Success(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: authUC, logger: newDiscardLogger()}

	accountID := uuid.New()
	authUC.EXPECT().
		CurrentAccount(mock.Anything, accountID).
		Return(&entity.Account{ID: accountID, Email: "owner@example.com"}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/auth/me/", "")
	c.Set("accountID", accountID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "owner@example.com")
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: authUC, logger: newDiscardLogger()}

	c, rec := newJSONContext(t, http.MethodGet, "/api/auth/me/", "")

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: authUC, logger: newDiscardLogger()}

	authUC.EXPECT().
		RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"}).
		Return(&usecase.RefreshTokenOutput{
			Tokens: usecase.TokenPair{Access: "new-access", Refresh: "new-refresh"},
		}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/refresh/", `{"refresh": "old-refresh"}`)

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access")
	assert.Contains(t, rec.Body.String(), "new-refresh")
}

func TestAuthHandler_RefreshToken_MissingToken(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: authUC, logger: newDiscardLogger()}

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/refresh/", `{}`)

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "refresh")
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := &AuthHandler{authUC: authUC, logger: newDiscardLogger()}

	authUC.EXPECT().
		Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "refresh-token"}).
		Return(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/auth/logout/", `{"refresh": "refresh-token"}`)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Successfully logged out.")
}
