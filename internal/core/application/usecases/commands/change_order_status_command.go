package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand is the admin status selector.
//
// Example:
//
//	target, _ := order.ParseStatus("Shipped")
//	cmd, err := NewChangeOrderStatusCommand(admin, orderID, 3, target)
type ChangeOrderStatusCommand struct {
	orderReference
	target order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	expectedVersion int,
	target order.Status,
) (ChangeOrderStatusCommand, error) {
	ref, refErr := newOrderReference(actor, orderID, expectedVersion)
	if err := errors.Join(refErr, target.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	return ChangeOrderStatusCommand{
		orderReference: ref,
		target:         target,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}
