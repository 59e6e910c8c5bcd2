// Package entity contains the core business objects of the project.
package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// BusinessInfo is the public business profile attached to a WebsiteSetup.
// At most one exists per setup. It is created by the client exactly once and
// only updated afterwards.
type BusinessInfo struct {
	ID             uuid.UUID // The unique identifier for this profile.
	WebsiteSetupID uuid.UUID // Owning setup. Unique, which enforces the one-to-one relation.

	Name    string
	Logo    string // Blob storage key of the uploaded logo, empty when none.
	About   string
	Address string

	// Coordinates are independent. Either may be set without the other.
	Latitude  *float64
	Longitude *float64

	ContactPhone string
	ContactEmail string
	Website      string

	WorkingHours WorkingHours

	IsPublished bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayHours describes one weekday's opening window.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// WorkingHours maps a lowercase weekday name ("monday"..."sunday") to its
// opening window. Stored as a JSONB column.
type WorkingHours map[string]DayHours

// Value implements driver.Valuer so WorkingHours persists as JSONB.
func (w WorkingHours) Value() (driver.Value, error) {
	if w == nil {
		return "{}", nil
	}

	data, err := json.Marshal(w)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal working hours")
	}

	return string(data), nil
}

// Scan implements sql.Scanner for reading the JSONB column back.
func (w *WorkingHours) Scan(value any) error {
	if value == nil {
		*w = WorkingHours{}

		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported working hours column type %T", value)
	}

	if len(data) == 0 {
		*w = WorkingHours{}

		return nil
	}

	return errors.Wrap(json.Unmarshal(data, w), "failed to unmarshal working hours")
}
