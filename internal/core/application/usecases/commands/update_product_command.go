package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces the editable attributes of a product.
// Existing orders keep the snapshot taken at their checkout.
type UpdateProductCommand struct {
	actor     kernel.Actor
	productID kernel.UUID
	details   product.Details

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(actor kernel.Actor, productID kernel.UUID, details product.Details) (UpdateProductCommand, error) {
	if err := errors.Join(actor.Validate(), productID.Validate(), product.ValidateDetails(details)); err != nil {
		return UpdateProductCommand{}, err
	}
	return UpdateProductCommand{
		actor:     actor,
		productID: productID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) Actor() kernel.Actor { return c.actor }

func (c UpdateProductCommand) ProductID() kernel.UUID { return c.productID }

func (c UpdateProductCommand) Details() product.Details { return c.details }
