package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand removes a product from the catalog.
type DeleteProductCommand struct {
	actor     kernel.Actor
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(actor kernel.Actor, productID kernel.UUID) (DeleteProductCommand, error) {
	if err := errors.Join(actor.Validate(), productID.Validate()); err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{actor: actor, productID: productID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) Actor() kernel.Actor { return c.actor }

func (c DeleteProductCommand) ProductID() kernel.UUID { return c.productID }
