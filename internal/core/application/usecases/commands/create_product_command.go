package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to the catalog.
//
// Example:
//
//	cmd, err := NewCreateProductCommand(admin, kernel.NewUUID(), product.Details{
//	    Name: "Wireless headphones", Description: "Noise cancelling", Price: 850000,
//	    ImageURL: "https://picsum.photos/seed/headphones/400/300",
//	})
type CreateProductCommand struct {
	actor     kernel.Actor
	productID kernel.UUID
	details   product.Details

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(actor kernel.Actor, productID kernel.UUID, details product.Details) (CreateProductCommand, error) {
	if err := errors.Join(actor.Validate(), productID.Validate(), product.ValidateDetails(details)); err != nil {
		return CreateProductCommand{}, err
	}
	return CreateProductCommand{
		actor:     actor,
		productID: productID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Actor() kernel.Actor { return c.actor }

func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }

func (c CreateProductCommand) Details() product.Details { return c.details }
