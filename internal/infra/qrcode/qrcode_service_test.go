package qrcode

import (
	"testing"

	"medify/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qrConfig(size int, level string) *config.Config {
	cfg := &config.Config{}
	cfg.QRCode = &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level}
	return cfg
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(qrConfig(tt.size, tt.errorCorrectionLevel))
			assert.NotNil(t, service)
		})
	}
}

func TestNewQRCodeService_DefaultsWhenUnconfigured(t *testing.T) {
	service := NewQRCodeService(&config.Config{})
	require.NotNil(t, service)

	qrBytes, err := service.GenerateSiteQR("https://medify.example.com/sites/abc")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestQRCodeService_GenerateSiteQR(t *testing.T) {
	service := NewQRCodeService(qrConfig(256, "M"))

	qrBytes, err := service.GenerateSiteQR("https://medify.example.com/sites/city-hospital")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateSiteQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(qrConfig(tt.size, "M"))

			qrBytes, err := service.GenerateSiteQR("https://medify.example.com/sites/central-pharmacy")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateSiteQR_EmptyURL(t *testing.T) {
	service := NewQRCodeService(qrConfig(256, "M"))

	_, err := service.GenerateSiteQR("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "site url must not be empty")
}
