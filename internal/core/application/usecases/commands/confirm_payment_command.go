package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand records that the admin received the manual QR payment.
type ConfirmPaymentCommand struct {
	orderReference

	guard guard.ConstructorGuard
}

func NewConfirmPaymentCommand(actor kernel.Actor, orderID kernel.UUID, expectedVersion int) (ConfirmPaymentCommand, error) {
	ref, err := newOrderReference(actor, orderID, expectedVersion)
	if err != nil {
		return ConfirmPaymentCommand{}, err
	}
	return ConfirmPaymentCommand{orderReference: ref, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}
