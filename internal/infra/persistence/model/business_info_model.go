package model

import (
	"time"

	"medify/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessInfoModel mirrors the 'business_info' table. WorkingHours is stored
// as a jsonb column; the entity type implements Valuer/Scanner for it.
type BusinessInfoModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	WebsiteSetupID uuid.UUID `gorm:"type:uuid;not null;unique"`
	Name           string    `gorm:"type:varchar(255)"`
	Logo           string    `gorm:"type:varchar(512)"`
	About          string    `gorm:"type:text"`
	Address        string    `gorm:"type:text"`
	Latitude       *float64
	Longitude      *float64
	ContactPhone   string              `gorm:"type:varchar(20)"`
	ContactEmail   string              `gorm:"type:varchar(255)"`
	Website        string              `gorm:"type:varchar(255)"`
	WorkingHours   entity.WorkingHours `gorm:"type:jsonb"`
	IsPublished    bool                `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessInfoModel) TableName() string {
	return "business_info"
}

// BeforeCreate assigns a fresh UUID unless the caller supplied one.
func (m *BusinessInfoModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
