package handler

import (
	"log/slog"
	"net/http"

	"medify/internal/delivery/http/middleware"
	"medify/internal/delivery/http/response"
	"medify/internal/domain/entity"
	"medify/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxLogoSize caps logo uploads at 5 MB.
const maxLogoSize = 5 << 20

// BusinessInfoHandlerParams holds dependencies for BusinessInfoHandler, injected by Fx.
type BusinessInfoHandlerParams struct {
	fx.In

	InfoUC usecase.BusinessInfoUsecase
	Logger *slog.Logger
}

// BusinessInfoHandler holds dependencies for business info handlers
type BusinessInfoHandler struct {
	infoUC usecase.BusinessInfoUsecase
	logger *slog.Logger
}

// NewBusinessInfoHandler is the constructor for BusinessInfoHandler
func NewBusinessInfoHandler(params BusinessInfoHandlerParams) *BusinessInfoHandler {
	return &BusinessInfoHandler{
		infoUC: params.InfoUC,
		logger: params.Logger,
	}
}

// UpsertBusinessInfoRequest represents the writable business info fields.
// It serves both create and partial update; absent fields are left untouched.
type UpsertBusinessInfoRequest struct {
	Name         *string             `json:"name"`
	About        *string             `json:"about"`
	Address      *string             `json:"address"`
	Latitude     *float64            `json:"latitude"`
	Longitude    *float64            `json:"longitude"`
	ContactPhone *string             `json:"contact_phone"`
	ContactEmail *string             `json:"contact_email"`
	Website      *string             `json:"website"`
	WorkingHours entity.WorkingHours `json:"working_hours"`
	IsPublished  *bool               `json:"is_published"`
}

func (req *UpsertBusinessInfoRequest) toInput() *usecase.UpsertBusinessInfoInput {
	return &usecase.UpsertBusinessInfoInput{
		Name:         req.Name,
		About:        req.About,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		Website:      req.Website,
		WorkingHours: req.WorkingHours,
		IsPublished:  req.IsPublished,
	}
}

// Get returns the caller's business info. Accounts without a website setup
// get an empty body, everyone else gets the profile (created on first read).
func (h *BusinessInfoHandler) Get(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	info, err := h.infoUC.Get(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if info == nil {
		return response.Success(c, http.StatusOK, nil)
	}

	return response.Success(c, http.StatusOK, toBusinessInfoDTO(info, h.infoUC.LogoURL))
}

// Create creates the caller's business info record exactly once
func (h *BusinessInfoHandler) Create(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req UpsertBusinessInfoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business info input")
	}

	info, err := h.infoUC.Create(c.Request().Context(), accountID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBusinessInfoDTO(info, h.infoUC.LogoURL))
}

// Update applies a partial update to the caller's business info
func (h *BusinessInfoHandler) Update(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req UpsertBusinessInfoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business info input")
	}

	info, err := h.infoUC.Update(c.Request().Context(), accountID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBusinessInfoDTO(info, h.infoUC.LogoURL))
}

// Publish marks the caller's website as published. Publishing twice is a no-op.
func (h *BusinessInfoHandler) Publish(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	info, err := h.infoUC.Publish(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBusinessInfoDTO(info, h.infoUC.LogoURL))
}

// UploadLogo accepts a multipart image upload and attaches it as the logo
func (h *BusinessInfoHandler) UploadLogo(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed",
			map[string][]string{"logo": {"No file was submitted."}})
	}
	if fileHeader.Size > maxLogoSize {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed",
			map[string][]string{"logo": {"The submitted file is too large."}})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "UPLOAD_FAILED", "Failed to read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	info, err := h.infoUC.UploadLogo(c.Request().Context(), accountID, fileHeader.Filename, contentType, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBusinessInfoDTO(info, h.infoUC.LogoURL))
}

// SiteQR streams a PNG QR code pointing at the caller's public website
func (h *BusinessInfoHandler) SiteQR(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	png, err := h.infoUC.SiteQR(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
