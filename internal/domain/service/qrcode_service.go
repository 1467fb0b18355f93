package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateBookQR returns a PNG QR code pointing at the public book listing
	GenerateBookQR(bookID int64) ([]byte, error)
}
