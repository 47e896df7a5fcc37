// Package cartrepo persists per-user carts as rows of cart_items. A user
// without rows has an empty cart.
package cartrepo

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartItemDTO represents a row of the cart_items table. Position keeps the
// order in which products were first added.
type CartItemDTO struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int
	Name        string
	Description string
	Price       int64
	ImageURL    string
	IsService   bool
	Quantity    int
}

// TableName specifies the database table name for cart items.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Get loads the cart of userID.
func (r *GormCartRepository) Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return r.load(r.db.WithContext(ctx), userID)
}

// GetForUpdate locks the owner's users row, then loads the cart. Every cart
// write of the same user waits for the lock, and the items are read after it
// is granted, so a transaction that waited sees what the previous holder
// committed (an emptied cart after a checkout).
// Must run inside a transaction.
func (r *GormCartRepository) GetForUpdate(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	var locked []uuid.UUID
	err := db.Table("users").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", userID.Bytes()).
		Pluck("id", &locked).Error
	if err != nil {
		return nil, err
	}
	if len(locked) == 0 {
		return nil, errs.NewObjectNotFoundError("user", userID.String())
	}

	return r.load(db, userID)
}

func (r *GormCartRepository) load(db *gorm.DB, userID kernel.UUID) (*cart.Cart, error) {
	var dtos []CartItemDTO
	err := db.
		Where("user_id = ?", userID.Bytes()).
		Order("position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		productID, idErr := kernel.UUIDFromBytes(dto.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		items = append(items, cart.Item{
			Product: product.Snapshot{
				ProductID:   productID,
				Name:        dto.Name,
				Description: dto.Description,
				Price:       dto.Price,
				ImageURL:    dto.ImageURL,
				IsService:   dto.IsService,
			},
			Quantity: dto.Quantity,
		})
	}

	return cart.RestoreCart(userID, items)
}

// Save replaces the stored items with the cart's current items.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	userID := aggregate.UserID().Bytes()
	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ?", userID).Delete(&CartItemDTO{}).Error; err != nil {
		return err
	}

	items := aggregate.Items()
	if len(items) == 0 {
		return nil
	}

	dtos := make([]CartItemDTO, 0, len(items))
	for i, item := range items {
		dtos = append(dtos, CartItemDTO{
			UserID:      userID,
			ProductID:   item.Product.ProductID.Bytes(),
			Position:    i,
			Name:        item.Product.Name,
			Description: item.Product.Description,
			Price:       item.Product.Price,
			ImageURL:    item.Product.ImageURL,
			IsService:   item.Product.IsService,
			Quantity:    item.Quantity,
		})
	}
	return db.Create(&dtos).Error
}
