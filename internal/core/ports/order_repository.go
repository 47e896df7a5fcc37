// Package ports defines the contracts between the storefront core and its adapters:
// repositories for every aggregate, the unit of work, and the outbound services
// (password hashing, session tokens, QR rendering, message publishing).
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order together with its line items.
	// The order must be new (BaseVersion 0).
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a mutated order with a compare-and-swap on its version:
	// the row is written only if its stored version still equals BaseVersion.
	//
	// Returns:
	//   - *errs.ObjectNotFoundError if the order does not exist
	//   - *errs.VersionIsInvalidError if another writer got there first
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllByUser returns the orders owned by userID, newest first.
	GetAllByUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)
}
