package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies the admin status selector. Retail
// orders move freely between non-terminal statuses; service orders accept only
// acknowledgment, payment confirmation and cancellation. Anything else returns
// *order.TransitionError and leaves the order untouched.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle runs the status change in one transaction.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.orderReference, order.TriggerStatusSelection,
		func(o *order.Order) error {
			return o.ChangeStatus(cmd.Target())
		})
}
