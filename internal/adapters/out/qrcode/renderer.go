// Package qrcode renders payment QR codes as PNG images.
package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

var _ ports.QRRenderer = (*Renderer)(nil)

// Renderer encodes text into a PNG QR code with a fixed recovery level.
type Renderer struct {
	level qrcode.RecoveryLevel
}

// NewRenderer creates a renderer. errorCorrectionLevel is one of L, M, Q or H;
// anything else selects M.
func NewRenderer(errorCorrectionLevel string) *Renderer {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	return &Renderer{level: level}
}

// RenderPNG returns a size x size PNG encoding content.
func (r *Renderer) RenderPNG(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errs.NewValueIsRequiredError("qr content")
	}
	if size <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("qr size", fmt.Errorf("%d is not greater than 0", size))
	}

	code, err := qrcode.New(content, r.level)
	if err != nil {
		return nil, fmt.Errorf("create QR code: %w", err)
	}
	png, err := code.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("encode QR code: %w", err)
	}
	return png, nil
}
