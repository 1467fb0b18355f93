package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"catalog/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := newQRCodeService(256, tt.level, "")
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateBookQR(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}})

	qrBytes, err := svc.GenerateBookQR(42)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestQRCodeService_Content(t *testing.T) {
	withURL := newQRCodeService(0, "", "https://books.example.com/")
	content, err := withURL.content(42)
	require.NoError(t, err)
	assert.Equal(t, "https://books.example.com/api/v1/books/42", content)
	assert.Equal(t, defaultSize, withURL.size)

	withoutURL := newQRCodeService(0, "", "")
	content, err = withoutURL.content(42)
	require.NoError(t, err)
	assert.JSONEq(t, `{"book_id":42,"type":"book"}`, content)
}

func TestNewQRCodeService_NilConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	qrBytes, err := svc.GenerateBookQR(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, qrBytes[:4])
}
