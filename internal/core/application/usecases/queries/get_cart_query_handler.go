package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCartQueryHandler struct {
	db *gorm.DB
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle returns the actor's cart; a user who never added anything gets an empty cart.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	view := CartView{Items: make([]CartItemView, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			description,
			price,
			image_url,
			is_service,
			quantity
		FROM cart_items
		WHERE user_id = ?
		ORDER BY position
	`, query.Actor().UserID().Bytes()).Rows()
	if err != nil {
		return CartView{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItemView
		var id uuid.UUID
		err = rows.Scan(
			&id,
			&item.Product.Name,
			&item.Product.Description,
			&item.Product.Price,
			&item.Product.ImageURL,
			&item.Product.IsService,
			&item.Quantity,
		)
		if err != nil {
			return CartView{}, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return CartView{}, idErr
		}
		item.Product.ID = productID
		if item.Subtotal, err = product.LineAmount(item.Product.Price, item.Quantity); err != nil {
			return CartView{}, err
		}
		if view.Total, err = product.AddAmounts(view.Total, item.Subtotal); err != nil {
			return CartView{}, err
		}

		view.Items = append(view.Items, item)
	}

	if err = rows.Err(); err != nil {
		return CartView{}, err
	}

	return view, nil
}
