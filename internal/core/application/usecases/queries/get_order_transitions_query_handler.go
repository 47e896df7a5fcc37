package queries

import (
	"context"
)

type GetOrderTransitionsQueryHandler struct {
	orders OrderReader
}

func NewGetOrderTransitionsQueryHandler(orders OrderReader) GetOrderTransitionsQueryHandler {
	return GetOrderTransitionsQueryHandler{orders: orders}
}

// Handle returns an empty Available list for terminal orders.
func (h GetOrderTransitionsQueryHandler) Handle(ctx context.Context, query GetOrderTransitionsQuery) (TransitionsView, error) {
	if err := query.Validate(); err != nil {
		return TransitionsView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return TransitionsView{}, err
	}

	available := make([]string, 0)
	for _, s := range o.AvailableStatusChanges() {
		available = append(available, s.String())
	}

	return TransitionsView{
		OrderID:   o.ID(),
		Status:    o.Status().String(),
		Version:   o.Version(),
		Available: available,
	}, nil
}
