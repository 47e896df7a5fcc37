package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// ConfirmPaymentCommandHandler moves a service order from Report Ready -
// Awaiting Payment to Payment Confirmed. Admin only.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{uowFactory: uowFactory}
}

// Handle runs the confirmation in one transaction.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.orderReference, order.TriggerPaymentConfirmation,
		func(o *order.Order) error {
			return o.ConfirmPayment()
		})
}
