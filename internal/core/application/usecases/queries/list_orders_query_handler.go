package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

type ListOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()

	var (
		orders []*order.Order
		err    error
	)
	if actor.IsAdmin() {
		orders, err = h.orders.GetAll(ctx)
	} else {
		orders, err = h.orders.GetAllByUser(ctx, actor.UserID())
	}
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(actor, o))
	}
	return views, nil
}
