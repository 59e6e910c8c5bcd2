package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"medify/internal/delivery/http/middleware"
	"medify/internal/delivery/http/response"
	"medify/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebsiteSetupHandlerParams holds dependencies for WebsiteSetupHandler, injected by Fx.
type WebsiteSetupHandlerParams struct {
	fx.In

	SetupUC usecase.WebsiteSetupUsecase
	Logger  *slog.Logger
}

// WebsiteSetupHandler holds dependencies for website setup handlers
type WebsiteSetupHandler struct {
	setupUC usecase.WebsiteSetupUsecase
	logger  *slog.Logger
}

// NewWebsiteSetupHandler is the constructor for WebsiteSetupHandler
func NewWebsiteSetupHandler(params WebsiteSetupHandlerParams) *WebsiteSetupHandler {
	return &WebsiteSetupHandler{
		setupUC: params.SetupUC,
		logger:  params.Logger,
	}
}

// UpdateWebsiteSetupRequest represents a partial setup update. Absent fields
// are left untouched. template_id is raw so an explicit null (clear the
// selection) can be told apart from the field being absent.
type UpdateWebsiteSetupRequest struct {
	ReviewSystem       *bool           `json:"review_system"`
	AIChatbot          *bool           `json:"ai_chatbot"`
	AmbulanceOrdering  *bool           `json:"ambulance_ordering"`
	PatientPortal      *bool           `json:"patient_portal"`
	PrescriptionRefill *bool           `json:"prescription_refill"`
	TemplateID         json.RawMessage `json:"template_id"`
	IsPaid             *bool           `json:"is_paid"`
	TotalPrice         *float64        `json:"total_price"`
}

// Get returns the caller's website setup, creating a default one on first read
func (h *WebsiteSetupHandler) Get(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	out, err := h.setupUC.GetOrCreate(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWebsiteSetupDTO(out.Setup, out.Account))
}

// Update applies a partial update to the caller's website setup
func (h *WebsiteSetupHandler) Update(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req UpdateWebsiteSetupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid website setup input")
	}

	input := &usecase.UpdateWebsiteSetupInput{
		ReviewSystem:       req.ReviewSystem,
		AIChatbot:          req.AIChatbot,
		AmbulanceOrdering:  req.AmbulanceOrdering,
		PatientPortal:      req.PatientPortal,
		PrescriptionRefill: req.PrescriptionRefill,
		IsPaid:             req.IsPaid,
		TotalPrice:         req.TotalPrice,
	}

	if len(req.TemplateID) > 0 {
		if bytes.Equal(bytes.TrimSpace(req.TemplateID), []byte("null")) {
			input.ClearTemplate = true
		} else {
			var templateID int
			if err := json.Unmarshal(req.TemplateID, &templateID); err != nil {
				return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed",
					map[string][]string{"template_id": {"A valid integer is required."}})
			}
			input.TemplateID = &templateID
		}
	}

	out, err := h.setupUC.Update(c.Request().Context(), accountID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWebsiteSetupDTO(out.Setup, out.Account))
}
