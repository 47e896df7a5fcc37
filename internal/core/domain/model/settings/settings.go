// Package settings holds the single global admin settings record.
package settings

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

// ErrAdminSettingsIsNotConstructed is returned for settings that bypassed NewAdminSettings.
var ErrAdminSettingsIsNotConstructed = errors.New("AdminSettings must be created via NewAdminSettings constructor")

// AdminSettings is the global, admin-mutable configuration read by checkout.
// Checkout copies QRISImageURL onto each new service order, so changing it
// never affects a payment already in progress.
type AdminSettings struct {
	qrisImageURL string

	guard guard.ConstructorGuard
}

// NewAdminSettings validates the payment QR image URL.
func NewAdminSettings(qrisImageURL string) (*AdminSettings, error) {
	s := &AdminSettings{guard: guard.NewConstructorGuard()}
	if err := s.ChangeQRISImageURL(qrisImageURL); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *AdminSettings) Validate() error {
	if s == nil {
		return ErrAdminSettingsIsNotConstructed
	}
	return s.guard.Validate(ErrAdminSettingsIsNotConstructed)
}

// QRISImageURL returns the payment QR image URL currently shown for new service orders.
func (s *AdminSettings) QRISImageURL() string { return s.qrisImageURL }

// ChangeQRISImageURL replaces the payment QR image URL.
func (s *AdminSettings) ChangeQRISImageURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if err := kernel.ValidateHTTPURL("qrisImageUrl", raw); err != nil {
		return err
	}
	s.qrisImageURL = raw
	return nil
}
