package commands

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// requireAdmin rejects non-admin actors for catalog and settings operations.
func requireAdmin(actor kernel.Actor, action string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewAccessDeniedError(action, "requires role admin, actor is "+actor.Role().String())
	}
	return nil
}
