package handler

import (
	"log/slog"
	"net/http"

	"medify/internal/delivery/http/middleware"
	"medify/internal/delivery/http/response"
	"medify/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for authentication-related handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignupRequest represents the request body for registering an account
type SignupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	Name            string `json:"name" validate:"required"`
	BusinessType    string `json:"business_type" validate:"required,oneof=hospital pharmacy"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest represents the request body for rotating a refresh token
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// LogoutRequest represents the request body for ending a session
type LogoutRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// SignupResponse is the response body for a successful registration
type SignupResponse struct {
	User           AccountDTO        `json:"user"`
	Tokens         usecase.TokenPair `json:"tokens"`
	WebsiteSetupID string            `json:"website_setup_id"`
}

// LoginResponse is the response body for a successful login
type LoginResponse struct {
	User   AccountDTO        `json:"user"`
	Tokens usecase.TokenPair `json:"tokens"`
}

// RefreshResponse is the response body for a successful token rotation
type RefreshResponse struct {
	Tokens usecase.TokenPair `json:"tokens"`
}

// Signup handles account registration
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Name:            req.Name,
		BusinessType:    req.BusinessType,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, SignupResponse{
		User:           toAccountDTO(out.Account),
		Tokens:         out.Tokens,
		WebsiteSetupID: out.WebsiteSetupID.String(),
	})
}

// Login handles account login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "MISSING_CREDENTIALS", "Email and password are required")
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		User:   toAccountDTO(out.Account),
		Tokens: out.Tokens,
	})
}

// Me returns the authenticated caller's own account
func (h *AuthHandler) Me(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.authUC.CurrentAccount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountDTO(account))
}

// RefreshToken exchanges a valid refresh token for a new credential pair
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.Refresh,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RefreshResponse{Tokens: out.Tokens})
}

// Logout ends the session associated with the given refresh token
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.Logout(c.Request().Context(), &usecase.LogoutInput{
		RefreshToken: req.Refresh,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"detail": "Successfully logged out."})
}
