package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository stores one cart per user.
type CartRepository interface {
	// Get returns the user's cart, or an empty cart if none was saved yet.
	Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)
	// GetForUpdate is Get for a cart about to be written. It serializes
	// concurrent writers of the same user's cart until their transactions end,
	// so two checkouts of one cart cannot both see its items.
	GetForUpdate(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)
	// Save replaces the stored items of the cart.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
