package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError for an unknown id.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductView, error) {
	if err := query.Validate(); err != nil {
		return ProductView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+productColumns+`
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ProductView{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}
	return p, err
}
