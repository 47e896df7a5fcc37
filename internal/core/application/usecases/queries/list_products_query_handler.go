package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const productColumns = `id, name, description, price, image_url, is_service`

// ListProductsQueryHandler reads the catalog in the order products were created.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle returns every product, oldest first, then by name.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (ProductView, error) {
	var p ProductView
	var id uuid.UUID
	if err := row.Scan(&id, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.IsService); err != nil {
		return ProductView{}, err
	}
	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductView{}, err
	}
	p.ID = productID
	return p, nil
}
