package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderDocumentQueryIsNotConstructed = errors.New(
	"GetOrderDocumentQuery must be created via NewGetOrderDocumentQuery constructor",
)

// GetOrderDocumentQuery retrieves the document the buyer uploaded for a
// service order, so the admin can review it. The owner may read it too.
type GetOrderDocumentQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderDocumentQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderDocumentQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderDocumentQuery{}, err
	}
	return GetOrderDocumentQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDocumentQueryIsNotConstructed)
}

func (q GetOrderDocumentQuery) Actor() kernel.Actor { return q.actor }

func (q GetOrderDocumentQuery) OrderID() kernel.UUID { return q.orderID }
