package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/product"
)

// LineItem is an order line: a product snapshot taken at checkout and a quantity.
// Later catalog edits never reach it.
type LineItem struct {
	Product  product.Snapshot
	Quantity int
}

// Subtotal returns price times quantity, or an out-of-range error when it does not fit in int64.
func (l LineItem) Subtotal() (int64, error) {
	return product.LineAmount(l.Product.Price, l.Quantity)
}

// Validate checks the snapshot, that the quantity lies in [1, product.MaxQuantity]
// and that the subtotal is representable.
func (l LineItem) Validate() error {
	if err := errors.Join(l.Product.Validate(), product.ValidateQuantity(l.Quantity)); err != nil {
		return err
	}
	_, err := l.Subtotal()
	return err
}

// SumLineItems returns the total amount for items.
func SumLineItems(items []LineItem) (int64, error) {
	amounts := make([]int64, 0, len(items))
	for idx, item := range items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return 0, fmt.Errorf("item %d: %w", idx, err)
		}
		amounts = append(amounts, subtotal)
	}
	return product.AddAmounts(amounts...)
}

// ContainsService reports whether any item is the document-verification service.
func ContainsService(items []LineItem) bool {
	for _, item := range items {
		if item.Product.IsService {
			return true
		}
	}
	return false
}
