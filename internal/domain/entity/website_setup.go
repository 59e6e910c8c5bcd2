// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WebsiteSetup is the per-account website configuration record. Exactly one
// exists per Account; it is created by the system during signup and is never
// created or deleted by a client.
type WebsiteSetup struct {
	ID        uuid.UUID // The unique identifier for this setup record.
	AccountID uuid.UUID // Owning account. Unique, which enforces the one-to-one relation.

	// Hospital features.
	ReviewSystem       bool
	AIChatbot          bool
	AmbulanceOrdering  bool
	PatientPortal      bool
	PrescriptionRefill bool

	// Pharmacy template selection. Nil until the owner picks one.
	TemplateID *int

	// Payment state.
	IsPaid     bool
	TotalPrice float64 // Stored as decimal(10,2).

	CreatedAt time.Time
	UpdatedAt time.Time
}
