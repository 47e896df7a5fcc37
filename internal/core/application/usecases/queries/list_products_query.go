package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery retrieves the whole catalog. The catalog is public.
//
// Example:
//
//	query := NewListProductsQuery()
//	handler := NewListProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list products: %w", err)
//	}
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a query to retrieve all products.
func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// ProductView is the read model of a catalog product.
type ProductView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       int64
	ImageURL    string
	IsService   bool
}
