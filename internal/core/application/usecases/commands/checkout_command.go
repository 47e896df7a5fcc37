package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand places an order from the actor's server-side cart.
// Client-side totals are never part of the command.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCheckoutCommand(actor, orderID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, services.ErrCartIsEmpty) {
//	    // nothing to order
//	}
type CheckoutCommand struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCheckoutCommand(actor kernel.Actor, orderID kernel.UUID) (CheckoutCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return CheckoutCommand{}, err
	}
	return CheckoutCommand{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) Actor() kernel.Actor { return c.actor }

// OrderID returns the identifier the new order will get.
func (c CheckoutCommand) OrderID() kernel.UUID { return c.orderID }
