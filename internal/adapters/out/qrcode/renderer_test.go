package qrcode_test

import (
	"bytes"
	"image/png"
	"testing"

	"storefront/internal/adapters/out/qrcode"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const content = "https://picsum.photos/seed/sampleQR/250/250"

func TestRenderer_RenderPNG(t *testing.T) {
	tests := []struct {
		name  string
		level string
		size  int
	}{
		{"low", "L", 128},
		{"medium", "M", 256},
		{"high", "q", 256},
		{"highest", "H", 512},
		{"unknown level falls back", "invalid", 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := qrcode.NewRenderer(tt.level).RenderPNG(content, tt.size)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
			assert.Equal(t, tt.size, img.Bounds().Dy())
		})
	}
}

func TestRenderer_RejectsBadInput(t *testing.T) {
	r := qrcode.NewRenderer("M")

	_, err := r.RenderPNG("  ", 256)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = r.RenderPNG(content, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
