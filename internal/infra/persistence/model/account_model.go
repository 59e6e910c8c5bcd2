// Package model contains the GORM persistence models that mirror the
// PostgreSQL schema. Mapping to and from domain entities happens in the
// repository implementations.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'accounts' table. IDs are assigned app-side in
// BeforeCreate; stock PostgreSQL has no UUID-generating function without
// extensions.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	BusinessType string    `gorm:"type:varchar(20);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	WebsiteSetup  *WebsiteSetupModel  `gorm:"foreignKey:AccountID"`
	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// BeforeCreate assigns a fresh UUID unless the caller supplied one.
func (m *AccountModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
