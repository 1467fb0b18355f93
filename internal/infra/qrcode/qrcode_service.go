package qrcode

import (
	"encoding/json"
	"strconv"
	"strings"

	"catalog/config"
	"catalog/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// BookQRData is encoded when no public base URL is configured
type BookQRData struct {
	BookID int64  `json:"book_id"`
	Type   string `json:"type"`
}

// NewQRCodeService creates a QR code service from configuration
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "", "")
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateBookQR encodes the public listing URL, or a JSON reference without one, as PNG.
func (s *qrcodeService) GenerateBookQR(bookID int64) ([]byte, error) {
	content, err := s.content(bookID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) content(bookID int64) (string, error) {
	if s.baseURL != "" {
		return s.baseURL + "/api/v1/books/" + strconv.FormatInt(bookID, 10), nil
	}

	data, err := json.Marshal(BookQRData{BookID: bookID, Type: "book"})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(data), nil
}
