package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdateSettingsCommandIsNotConstructed = errors.New(
	"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
)

// UpdateSettingsCommand changes the payment QR image URL used by future service orders.
type UpdateSettingsCommand struct {
	actor        kernel.Actor
	qrisImageURL string

	guard guard.ConstructorGuard
}

func NewUpdateSettingsCommand(actor kernel.Actor, qrisImageURL string) (UpdateSettingsCommand, error) {
	qrisImageURL = strings.TrimSpace(qrisImageURL)
	if err := errors.Join(actor.Validate(), kernel.ValidateHTTPURL("qrisImageUrl", qrisImageURL)); err != nil {
		return UpdateSettingsCommand{}, err
	}
	return UpdateSettingsCommand{actor: actor, qrisImageURL: qrisImageURL, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingsCommandIsNotConstructed)
}

func (c UpdateSettingsCommand) Actor() kernel.Actor { return c.actor }

func (c UpdateSettingsCommand) QRISImageURL() string { return c.qrisImageURL }
