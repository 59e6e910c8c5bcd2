package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateSiteQR renders a PNG QR code pointing at the given public
	// website URL.
	GenerateSiteQR(siteURL string) ([]byte, error)
}
