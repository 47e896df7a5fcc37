package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetSettingsQueryIsNotConstructed = errors.New(
	"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
)

// GetSettingsQuery retrieves the admin settings. Admin only.
type GetSettingsQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetSettingsQuery(actor kernel.Actor) (GetSettingsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetSettingsQuery{}, err
	}
	if !actor.IsAdmin() {
		return GetSettingsQuery{}, errs.NewAccessDeniedError("read settings", "requires role admin")
	}
	return GetSettingsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

// SettingsView is the read model of the admin settings.
type SettingsView struct {
	QRISImageURL string
	// IsDefault is true until an admin saves settings.
	IsDefault bool
}
