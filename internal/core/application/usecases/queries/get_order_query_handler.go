package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := loadVisibleOrder(ctx, h.orders, query.Actor(), query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	return NewOrderView(query.Actor(), o), nil
}

// loadVisibleOrder hides orders the actor may not read behind not-found.
func loadVisibleOrder(ctx context.Context, orders OrderReader, actor kernel.Actor, orderID kernel.UUID) (*order.Order, error) {
	o, err := orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !services.NewRoleGate().CanView(actor, o) {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}
	return o, nil
}
