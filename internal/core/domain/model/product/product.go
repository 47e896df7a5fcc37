package product

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned for a Product that bypassed NewProduct/RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Details carries the admin-editable attributes of a product.
type Details struct {
	Name        string
	Description string
	// Price is expressed in the smallest currency unit and must be positive.
	Price     int64
	ImageURL  string
	IsService bool
}

// Product is the catalog aggregate root.
//
// Invariants:
//   - Name and description are non-blank
//   - Price is strictly positive
//   - ImageURL is an absolute http(s) URL
type Product struct {
	id      kernel.UUID
	details Details

	guard guard.ConstructorGuard
}

// NewProduct validates details and creates a product with the given id.
//
// Example:
//
//	p, err := product.NewProduct(kernel.NewUUID(), product.Details{
//	    Name:        "Document verification",
//	    Description: "Plagiarism check with a detailed report",
//	    Price:       75000,
//	    ImageURL:    "https://picsum.photos/seed/service/400/300",
//	    IsService:   true,
//	})
func NewProduct(id kernel.UUID, details Details) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}
	if err := errors.Join(p.setID(id), p.setDetails(details)); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreProduct rebuilds a product loaded from persistence, re-checking every invariant.
func RestoreProduct(id kernel.UUID, details Details) (*Product, error) {
	return NewProduct(id, details)
}

// Validate ensures the product went through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID { return p.id }

func (p *Product) Name() string { return p.details.Name }

func (p *Product) Description() string { return p.details.Description }

func (p *Product) Price() int64 { return p.details.Price }

func (p *Product) ImageURL() string { return p.details.ImageURL }

func (p *Product) IsService() bool { return p.details.IsService }

// Details returns a copy of the editable attributes.
func (p *Product) Details() Details { return p.details }

// Update replaces the editable attributes. Nothing changes if validation fails.
func (p *Product) Update(details Details) error {
	return p.setDetails(details)
}

// Snapshot captures the product as it is right now for embedding in carts and orders.
func (p *Product) Snapshot() Snapshot {
	return Snapshot{
		ProductID:   p.id,
		Name:        p.details.Name,
		Description: p.details.Description,
		Price:       p.details.Price,
		ImageURL:    p.details.ImageURL,
		IsService:   p.details.IsService,
	}
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.ImageURL = strings.TrimSpace(d.ImageURL)

	if err := ValidateDetails(d); err != nil {
		return err
	}
	p.details = d
	return nil
}

// ValidateDetails checks the catalog invariants without building a product.
func ValidateDetails(d Details) error {
	var problems []error
	if strings.TrimSpace(d.Name) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if strings.TrimSpace(d.Description) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("description"))
	}
	if d.Price <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", d.Price)))
	}
	if err := kernel.ValidateHTTPURL("imageUrl", d.ImageURL); err != nil {
		problems = append(problems, err)
	}
	return errors.Join(problems...)
}
