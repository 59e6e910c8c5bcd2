// Package entity contains the core business objects of the project.
package entity

// BusinessType represents the vertical an account operates in.
type BusinessType string

const (
	// BusinessTypeHospital indicates a hospital account.
	BusinessTypeHospital BusinessType = "hospital"
	// BusinessTypePharmacy indicates a pharmacy account.
	BusinessTypePharmacy BusinessType = "pharmacy"
)

// String returns the string representation of the BusinessType.
func (b BusinessType) String() string {
	return string(b)
}

// IsValid checks if the BusinessType is a valid value.
func (b BusinessType) IsValid() bool {
	switch b {
	case BusinessTypeHospital, BusinessTypePharmacy:
		return true
	default:
		return false
	}
}
