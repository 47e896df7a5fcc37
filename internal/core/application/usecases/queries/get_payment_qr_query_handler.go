package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

type GetPaymentQRQueryHandler struct {
	orders   OrderReader
	renderer ports.QRRenderer
}

func NewGetPaymentQRQueryHandler(orders OrderReader, renderer ports.QRRenderer) GetPaymentQRQueryHandler {
	return GetPaymentQRQueryHandler{orders: orders, renderer: renderer}
}

// Handle returns the PNG bytes, or order.ErrNotServiceOrder for retail orders.
func (h GetPaymentQRQueryHandler) Handle(ctx context.Context, query GetPaymentQRQuery) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := loadVisibleOrder(ctx, h.orders, query.Actor(), query.OrderID())
	if err != nil {
		return nil, err
	}
	if !o.IsServiceOrder() {
		return nil, order.ErrNotServiceOrder
	}

	return h.renderer.RenderPNG(o.QRISImageURL(), query.Size())
}
