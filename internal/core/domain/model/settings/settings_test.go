package settings_test

import (
	"testing"

	"storefront/internal/core/domain/model/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminSettings(t *testing.T) {
	s, err := settings.NewAdminSettings("https://picsum.photos/seed/sampleQR/250/250")
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	require.Error(t, s.ChangeQRISImageURL("javascript:alert(1)"))
	assert.Equal(t, "https://picsum.photos/seed/sampleQR/250/250", s.QRISImageURL())

	require.NoError(t, s.ChangeQRISImageURL(" https://cdn.example.com/qris.png "))
	assert.Equal(t, "https://cdn.example.com/qris.png", s.QRISImageURL())

	_, err = settings.NewAdminSettings("")
	require.Error(t, err)

	var zero settings.AdminSettings
	require.ErrorIs(t, zero.Validate(), settings.ErrAdminSettingsIsNotConstructed)
}
