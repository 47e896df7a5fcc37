package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the catalog.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	// Delete removes a product. Orders keep their snapshots.
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
	// Count returns the number of catalog entries; seeding runs only on an empty catalog.
	Count(ctx context.Context) (int64, error)
}
