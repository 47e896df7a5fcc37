package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand sets the quantity of a cart line. Zero or less removes it.
type UpdateCartItemCommand struct {
	actor     kernel.Actor
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemCommand(actor kernel.Actor, productID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	if err := errors.Join(actor.Validate(), productID.Validate()); err != nil {
		return UpdateCartItemCommand{}, err
	}
	return UpdateCartItemCommand{
		actor:     actor,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

func (c UpdateCartItemCommand) Actor() kernel.Actor { return c.actor }

func (c UpdateCartItemCommand) ProductID() kernel.UUID { return c.productID }

func (c UpdateCartItemCommand) Quantity() int { return c.quantity }
