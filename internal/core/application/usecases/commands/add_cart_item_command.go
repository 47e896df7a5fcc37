package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAddCartItemCommandIsNotConstructed = errors.New(
	"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
)

// AddCartItemCommand puts one unit of a catalog product into the actor's cart.
type AddCartItemCommand struct {
	actor     kernel.Actor
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(actor kernel.Actor, productID kernel.UUID) (AddCartItemCommand, error) {
	if err := errors.Join(actor.Validate(), productID.Validate()); err != nil {
		return AddCartItemCommand{}, err
	}
	return AddCartItemCommand{actor: actor, productID: productID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) Actor() kernel.Actor { return c.actor }

func (c AddCartItemCommand) ProductID() kernel.UUID { return c.productID }
