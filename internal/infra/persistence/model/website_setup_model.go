package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebsiteSetupModel mirrors the 'website_setups' table. The unique index on
// AccountID enforces the one-setup-per-account rule at the database level,
// which is what makes concurrent get-or-create safe.
type WebsiteSetupModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountID          uuid.UUID `gorm:"type:uuid;not null;unique"`
	ReviewSystem       bool      `gorm:"not null;default:false"`
	AIChatbot          bool      `gorm:"column:ai_chatbot;not null;default:false"`
	AmbulanceOrdering  bool      `gorm:"not null;default:false"`
	PatientPortal      bool      `gorm:"not null;default:false"`
	PrescriptionRefill bool      `gorm:"not null;default:false"`
	TemplateID         *int
	IsPaid             bool    `gorm:"not null;default:false"`
	TotalPrice         float64 `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	BusinessInfo *BusinessInfoModel `gorm:"foreignKey:WebsiteSetupID"`
}

// TableName explicitly sets the table name for GORM.
func (WebsiteSetupModel) TableName() string {
	return "website_setups"
}

// BeforeCreate assigns a fresh UUID unless the caller supplied one.
func (m *WebsiteSetupModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
