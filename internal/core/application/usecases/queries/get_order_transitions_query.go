package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderTransitionsQueryIsNotConstructed = errors.New(
	"GetOrderTransitionsQuery must be created via NewGetOrderTransitionsQuery constructor",
)

// GetOrderTransitionsQuery retrieves the targets the admin status selector
// may offer for an order, together with the version to send back.
type GetOrderTransitionsQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderTransitionsQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderTransitionsQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderTransitionsQuery{}, err
	}
	if !actor.IsAdmin() {
		return GetOrderTransitionsQuery{}, errs.NewAccessDeniedError("read status transitions", "requires role admin")
	}
	return GetOrderTransitionsQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTransitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTransitionsQueryIsNotConstructed)
}

func (q GetOrderTransitionsQuery) Actor() kernel.Actor { return q.actor }

func (q GetOrderTransitionsQuery) OrderID() kernel.UUID { return q.orderID }

// TransitionsView describes the status selector of one order.
type TransitionsView struct {
	OrderID   kernel.UUID
	Status    string
	Version   int
	Available []string
}
