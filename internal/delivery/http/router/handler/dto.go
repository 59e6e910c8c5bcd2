package handler

import (
	"time"

	"medify/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountDTO is the public projection of an account. The password hash is
// never part of any response body.
type AccountDTO struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	BusinessType string    `json:"business_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// WebsiteSetupDTO is the wire projection of a website setup, with the owning
// account summary nested under "user".
type WebsiteSetupDTO struct {
	ID                 uuid.UUID  `json:"id"`
	User               AccountDTO `json:"user"`
	ReviewSystem       bool       `json:"review_system"`
	AIChatbot          bool       `json:"ai_chatbot"`
	AmbulanceOrdering  bool       `json:"ambulance_ordering"`
	PatientPortal      bool       `json:"patient_portal"`
	PrescriptionRefill bool       `json:"prescription_refill"`
	TemplateID         *int       `json:"template_id"`
	IsPaid             bool       `json:"is_paid"`
	TotalPrice         float64    `json:"total_price"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// BusinessInfoDTO is the read projection of a business profile. LogoURL is
// computed from the stored key and is null when no logo has been uploaded.
type BusinessInfoDTO struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	Logo         string              `json:"logo"`
	LogoURL      *string             `json:"logo_url"`
	About        string              `json:"about"`
	Address      string              `json:"address"`
	Latitude     *float64            `json:"latitude"`
	Longitude    *float64            `json:"longitude"`
	ContactPhone string              `json:"contact_phone"`
	ContactEmail string              `json:"contact_email"`
	Website      string              `json:"website"`
	WorkingHours entity.WorkingHours `json:"working_hours"`
	IsPublished  bool                `json:"is_published"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// toAccountDTO projects an account entity for responses.
func toAccountDTO(account *entity.Account) AccountDTO {
	return AccountDTO{
		ID:           account.ID,
		Email:        account.Email,
		Name:         account.Name,
		BusinessType: account.BusinessType.String(),
		CreatedAt:    account.CreatedAt,
	}
}

// toWebsiteSetupDTO projects a setup with its owning account.
func toWebsiteSetupDTO(setup *entity.WebsiteSetup, account *entity.Account) WebsiteSetupDTO {
	return WebsiteSetupDTO{
		ID:                 setup.ID,
		User:               toAccountDTO(account),
		ReviewSystem:       setup.ReviewSystem,
		AIChatbot:          setup.AIChatbot,
		AmbulanceOrdering:  setup.AmbulanceOrdering,
		PatientPortal:      setup.PatientPortal,
		PrescriptionRefill: setup.PrescriptionRefill,
		TemplateID:         setup.TemplateID,
		IsPaid:             setup.IsPaid,
		TotalPrice:         setup.TotalPrice,
		CreatedAt:          setup.CreatedAt,
		UpdatedAt:          setup.UpdatedAt,
	}
}

// toBusinessInfoDTO projects a profile, resolving the logo key to its public
// URL via the given resolver.
func toBusinessInfoDTO(info *entity.BusinessInfo, logoURL func(string) string) BusinessInfoDTO {
	var publicURL *string
	if info.Logo != "" {
		u := logoURL(info.Logo)
		publicURL = &u
	}

	hours := info.WorkingHours
	if hours == nil {
		hours = entity.WorkingHours{}
	}

	return BusinessInfoDTO{
		ID:           info.ID,
		Name:         info.Name,
		Logo:         info.Logo,
		LogoURL:      publicURL,
		About:        info.About,
		Address:      info.Address,
		Latitude:     info.Latitude,
		Longitude:    info.Longitude,
		ContactPhone: info.ContactPhone,
		ContactEmail: info.ContactEmail,
		Website:      info.Website,
		WorkingHours: hours,
		IsPublished:  info.IsPublished,
		CreatedAt:    info.CreatedAt,
		UpdatedAt:    info.UpdatedAt,
	}
}
