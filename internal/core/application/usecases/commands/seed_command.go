package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrSeedCommandIsNotConstructed = errors.New(
	"SeedCommand must be created via NewSeedCommand constructor",
)

// SeedCommand prepares a fresh database: the single admin account, the
// starter catalog and the admin settings. Running it again changes nothing.
type SeedCommand struct {
	adminEmail        string
	adminPassword     string
	defaultQRImageURL string

	guard guard.ConstructorGuard
}

func NewSeedCommand(adminEmail, adminPassword, defaultQRImageURL string) (SeedCommand, error) {
	adminEmail = user.NormalizeEmail(adminEmail)
	defaultQRImageURL = strings.TrimSpace(defaultQRImageURL)

	var emailErr, passwordErr error
	if adminEmail == "" {
		emailErr = errs.NewValueIsRequiredError("adminEmail")
	}
	if adminPassword == "" {
		passwordErr = errs.NewValueIsRequiredError("adminPassword")
	}
	if err := errors.Join(
		emailErr,
		passwordErr,
		kernel.ValidateHTTPURL("defaultQrisImageUrl", defaultQRImageURL),
	); err != nil {
		return SeedCommand{}, err
	}

	return SeedCommand{
		adminEmail:        adminEmail,
		adminPassword:     adminPassword,
		defaultQRImageURL: defaultQRImageURL,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SeedCommand) Validate() error {
	return c.guard.Validate(ErrSeedCommandIsNotConstructed)
}

func (c SeedCommand) AdminEmail() string { return c.adminEmail }

func (c SeedCommand) AdminPassword() string { return c.adminPassword }

func (c SeedCommand) DefaultQRImageURL() string { return c.defaultQRImageURL }
