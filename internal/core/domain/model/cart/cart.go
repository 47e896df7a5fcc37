// Package cart holds the per-user shopping cart aggregate.
//
// A cart is keyed by its owner and persisted independently of orders. Every
// retained item has quantity of at least one: lowering a quantity to zero or
// below removes the item instead of keeping an empty line.
package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrCartIsNotConstructed is returned for a Cart that bypassed NewCart/RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Item is one cart line: a product snapshot and how many of it.
type Item struct {
	Product  product.Snapshot
	Quantity int
}

// Subtotal returns price times quantity, or an out-of-range error when it does not fit in int64.
func (i Item) Subtotal() (int64, error) {
	return product.LineAmount(i.Product.Price, i.Quantity)
}

// Validate checks the snapshot, that the quantity lies in [1, product.MaxQuantity]
// and that the subtotal is representable.
func (i Item) Validate() error {
	if err := errors.Join(i.Product.Validate(), product.ValidateQuantity(i.Quantity)); err != nil {
		return err
	}
	_, err := i.Subtotal()
	return err
}

// Cart is the set of items a user intends to buy. Items keep insertion order.
type Cart struct {
	userID kernel.UUID
	items  []Item

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for userID.
func NewCart(userID kernel.UUID) (*Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return &Cart{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

// RestoreCart rebuilds a persisted cart, checking every item.
func RestoreCart(userID kernel.UUID, items []Item) (*Cart, error) {
	c, err := NewCart(userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", idx, err)
		}
		if _, dup := seen[item.Product.ProductID]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("product %s appears twice", item.Product.ProductID))
		}
		seen[item.Product.ProductID] = struct{}{}
	}
	if _, err := sumItems(items); err != nil {
		return nil, err
	}
	c.items = append(c.items, items...)

	return c, nil
}

func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

func (c *Cart) UserID() kernel.UUID { return c.userID }

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Total is the sum of all line subtotals. Every mutation keeps it within int64.
func (c *Cart) Total() int64 {
	total, _ := sumItems(c.items)
	return total
}

// AddProduct adds one unit of p. If p is already in the cart its quantity is
// incremented and the stored snapshot is refreshed to the current catalog data.
func (c *Cart) AddProduct(p product.Snapshot) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if idx := c.indexOf(p.ProductID); idx >= 0 {
		return c.replaceAt(idx, Item{Product: p, Quantity: c.items[idx].Quantity + 1})
	}

	if _, err := sumItems(append(c.Items(), Item{Product: p, Quantity: 1})); err != nil {
		return err
	}
	c.items = append(c.items, Item{Product: p, Quantity: 1})
	return nil
}

// SetQuantity sets the quantity of a product already in the cart.
// A quantity of zero or less removes the item. A quantity above
// product.MaxQuantity, or one that pushes the total past int64, is rejected
// and leaves the cart unchanged.
func (c *Cart) SetQuantity(productID kernel.UUID, quantity int) error {
	idx := c.indexOf(productID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("cart item", productID)
	}
	if quantity <= 0 {
		c.removeAt(idx)
		return nil
	}
	return c.replaceAt(idx, Item{Product: c.items[idx].Product, Quantity: quantity})
}

// Remove drops a product from the cart.
func (c *Cart) Remove(productID kernel.UUID) error {
	idx := c.indexOf(productID)
	if idx < 0 {
		return errs.NewObjectNotFoundError("cart item", productID)
	}
	c.removeAt(idx)
	return nil
}

// Clear empties the cart. Checkout calls it in the same transaction that stores the order.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) indexOf(productID kernel.UUID) int {
	for i, item := range c.items {
		if item.Product.ProductID.IsEqual(productID) {
			return i
		}
	}
	return -1
}

// replaceAt swaps in item at idx only if the resulting cart stays representable.
func (c *Cart) replaceAt(idx int, item Item) error {
	if err := product.ValidateQuantity(item.Quantity); err != nil {
		return err
	}
	next := c.Items()
	next[idx] = item
	if _, err := sumItems(next); err != nil {
		return err
	}
	c.items[idx] = item
	return nil
}

func sumItems(items []Item) (int64, error) {
	amounts := make([]int64, 0, len(items))
	for _, item := range items {
		subtotal, err := item.Subtotal()
		if err != nil {
			return 0, err
		}
		amounts = append(amounts, subtotal)
	}
	return product.AddAmounts(amounts...)
}

func (c *Cart) removeAt(idx int) {
	c.items = append(c.items[:idx], c.items[idx+1:]...)
}
