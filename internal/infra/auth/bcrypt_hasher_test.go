package auth

import (
	"testing"

	"medify/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testHasherConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost} // Lower cost for faster testing
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   false,
		MaxLength:        128,
	}
	return cfg
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())
	password := "StrongPass123"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	validPasswords := []string{
		"StrongPass123",
		"MySecurePass1",
		"ComplexSecret9",
		"ValidPhrase2026",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "too short"},
		{"PASSWORD123", "lowercase letter"},
		{"password123", "uppercase letter"},
		{"PasswordABC", "at least one number"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.Error(t, err, "Expected error for password: %s", tc.password)
		assert.Contains(t, err.Error(), tc.expectedErr, "Error message should contain: %s", tc.expectedErr)
	}
}

func TestBcryptHasher_RequireSpecial(t *testing.T) {
	cfg := testHasherConfig()
	cfg.PasswordStrength.RequireSpecial = true
	hasher := NewBcryptHasher(cfg)

	assert.Error(t, hasher.ValidatePasswordStrength("Password123"))
	assert.NoError(t, hasher.ValidatePasswordStrength("Password123!"))
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	cfg := testHasherConfig()
	cfg.Auth.BcryptCost = 6
	hasher := NewBcryptHasher(cfg)

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the configured cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_DefaultsWhenUnconfigured(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	// Falls back to the default cost and a minimum-length-only policy.
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
	assert.NoError(t, hasher.ValidatePasswordStrength("longenoughpassword"))
}

func TestBcryptHasher_EdgeCases(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	// Empty password
	err := hasher.ValidatePasswordStrength("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too short")

	// Over the configured maximum
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	err = hasher.ValidatePasswordStrength("Aa1" + string(long))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "too long")

	// Unicode characters still count toward the character classes
	err = hasher.ValidatePasswordStrength("Pässphräse123")
	assert.NoError(t, err)
}
