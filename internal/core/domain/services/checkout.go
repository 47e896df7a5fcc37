package services

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/domain/model/user"
)

// ErrCartIsEmpty is returned when checking out a cart with no items.
var ErrCartIsEmpty = errors.New("cart is empty")

// Checkout is a domain service that places an order from a buyer's cart.
//
// Business rules:
//   - The cart must not be empty
//   - Line items are copied from the cart snapshot; the total is always recomputed
//   - The current payment QR URL is snapshotted only for service orders
//   - The cart is cleared only once the order exists
//
// Example usage:
//
//	o, err := services.NewCheckout().Place(kernel.NewUUID(), buyer, c, adminSettings, time.Now())
//	if errors.Is(err, services.ErrCartIsEmpty) {
//	    // nothing to buy
//	}
type Checkout struct{}

// NewCheckout creates a new Checkout instance.
func NewCheckout() Checkout {
	return Checkout{}
}

// Place builds the order and clears c. Callers persist both in one transaction
// so a failed insert keeps the cart.
//
// Parameters:
//   - orderID: Identifier for the new order
//   - buyer: The cart owner placing the order
//   - c: The buyer's cart
//   - adminSettings: Current admin settings providing the payment QR URL
//   - now: The order date
//
// Returns:
//   - *order.Order: The placed order
//   - error: ErrCartIsEmpty, an ownership mismatch or order validation errors
func (Checkout) Place(
	orderID kernel.UUID,
	buyer *user.User,
	c *cart.Cart,
	adminSettings *settings.AdminSettings,
	now time.Time,
) (*order.Order, error) {
	if err := errors.Join(buyer.Validate(), c.Validate(), adminSettings.Validate()); err != nil {
		return nil, err
	}
	if !c.UserID().IsEqual(buyer.ID()) {
		return nil, newCartOwnerMismatch(buyer.ID())
	}
	if c.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	items := make([]order.LineItem, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, order.LineItem{Product: item.Product, Quantity: item.Quantity})
	}

	placed, err := order.NewOrder(
		orderID,
		order.Owner{UserID: buyer.ID(), Email: buyer.Email()},
		items,
		now,
		adminSettings.QRISImageURL(),
	)
	if err != nil {
		return nil, err
	}

	c.Clear()
	return placed, nil
}
