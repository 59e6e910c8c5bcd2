// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing one registered
// business owner. The email doubles as the login identifier.
type Account struct {
	ID           uuid.UUID    // The unique identifier for the account.
	Email        string       // Login identifier, unique across the system.
	Name         string       // The owner's display name.
	BusinessType BusinessType // Which vertical this account belongs to (hospital or pharmacy).
	PasswordHash string       // bcrypt hash of the password. Never serialized to callers.
	CreatedAt    time.Time    // Timestamp of when this account was created.
	UpdatedAt    time.Time    // Timestamp of the last modification to this account.
}
