package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the cart of the calling actor.
type GetCartQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetCartQuery(actor kernel.Actor) (GetCartQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) Actor() kernel.Actor { return q.actor }

// CartView is the read model of a cart. Subtotals and the total are computed
// from the prices snapshotted when products were added.
type CartView struct {
	Items []CartItemView
	Total int64
}

type CartItemView struct {
	Product  ProductView
	Quantity int
	Subtotal int64
}
