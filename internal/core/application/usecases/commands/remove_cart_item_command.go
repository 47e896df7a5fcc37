package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand drops a product from the actor's cart.
type RemoveCartItemCommand struct {
	actor     kernel.Actor
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(actor kernel.Actor, productID kernel.UUID) (RemoveCartItemCommand, error) {
	if err := errors.Join(actor.Validate(), productID.Validate()); err != nil {
		return RemoveCartItemCommand{}, err
	}
	return RemoveCartItemCommand{actor: actor, productID: productID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) Actor() kernel.Actor { return c.actor }

func (c RemoveCartItemCommand) ProductID() kernel.UUID { return c.productID }
