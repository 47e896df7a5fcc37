package product

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

// Snapshot is an immutable copy of a product's attributes at a point in time.
type Snapshot struct {
	ProductID   kernel.UUID
	Name        string
	Description string
	Price       int64
	ImageURL    string
	IsService   bool
}

// Validate applies the catalog invariants to the copied attributes.
func (s Snapshot) Validate() error {
	return errors.Join(
		s.ProductID.Validate(),
		ValidateDetails(Details{
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			ImageURL:    s.ImageURL,
			IsService:   s.IsService,
		}),
	)
}
