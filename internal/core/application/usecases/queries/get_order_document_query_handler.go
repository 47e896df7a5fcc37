package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

type GetOrderDocumentQueryHandler struct {
	orders OrderReader
}

func NewGetOrderDocumentQueryHandler(orders OrderReader) GetOrderDocumentQueryHandler {
	return GetOrderDocumentQueryHandler{orders: orders}
}

// Handle returns order.ErrNotServiceOrder for retail orders and
// *errs.ObjectNotFoundError while no document was uploaded.
func (h GetOrderDocumentQueryHandler) Handle(ctx context.Context, query GetOrderDocumentQuery) (order.UploadedFile, error) {
	if err := query.Validate(); err != nil {
		return order.UploadedFile{}, err
	}

	o, err := loadVisibleOrder(ctx, h.orders, query.Actor(), query.OrderID())
	if err != nil {
		return order.UploadedFile{}, err
	}
	if !o.IsServiceOrder() {
		return order.UploadedFile{}, order.ErrNotServiceOrder
	}

	doc := o.BuyerUploadedFile()
	if doc == nil {
		return order.UploadedFile{}, errs.NewObjectNotFoundError("document", query.OrderID().String())
	}
	return *doc, nil
}
