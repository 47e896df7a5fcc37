package http

import (
	"time"

	"github.com/google/uuid"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type ProductInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       int64  `json:"price" validate:"gt=0"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	IsService   bool   `json:"isService"`
}

type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	IsService   bool      `json:"isService"`
}

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal int64   `json:"subtotal"`
}

type Cart struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}

// FileInfo describes an attached file without its content.
type FileInfo struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Size      int64  `json:"size"`
	SizeLabel string `json:"sizeLabel"`
}

// UploadedFile carries a file with its content as a data URI.
type UploadedFile struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type" validate:"required"`
	Size    int64  `json:"size" validate:"gt=0"`
	DataURL string `json:"dataUrl" validate:"required"`
}

type UploadRequest struct {
	ExpectedVersion int          `json:"expectedVersion" validate:"gte=1"`
	File            UploadedFile `json:"file"`
}

type VersionedRequest struct {
	ExpectedVersion int `json:"expectedVersion" validate:"gte=1"`
}

type ChangeStatusRequest struct {
	Status          string `json:"status" validate:"required"`
	ExpectedVersion int    `json:"expectedVersion" validate:"gte=1"`
}

type Order struct {
	ID                     uuid.UUID  `json:"id"`
	UserID                 uuid.UUID  `json:"userId"`
	UserEmail              string     `json:"userEmail"`
	Items                  []CartItem `json:"items"`
	TotalAmount            int64      `json:"totalAmount"`
	OrderDate              time.Time  `json:"orderDate"`
	Status                 string     `json:"status"`
	IsServiceOrder         bool       `json:"isServiceOrder"`
	BuyerUploadedFile      *FileInfo  `json:"buyerUploadedFile,omitempty"`
	AdminUploadedReport    *FileInfo  `json:"adminUploadedReport,omitempty"`
	QRISImageURLForOrder   string     `json:"qrisImageUrlForOrder,omitempty"`
	Version                int        `json:"version"`
	AvailableStatusChanges []string   `json:"availableStatusChanges"`
}

type Transitions struct {
	OrderID   uuid.UUID `json:"orderId"`
	Status    string    `json:"status"`
	Version   int       `json:"version"`
	Available []string  `json:"available"`
}

type SettingsInput struct {
	QRISImageURL string `json:"qrisImageUrl" validate:"required,url"`
}

type Settings struct {
	QRISImageURL string `json:"qrisImageUrl"`
	IsDefault    bool   `json:"isDefault"`
}

func toProduct(v queries.ProductView) Product {
	return Product{
		ID:          v.ID.Bytes(),
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		ImageURL:    v.ImageURL,
		IsService:   v.IsService,
	}
}

func toCart(v queries.CartView) Cart {
	items := make([]CartItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = CartItem{Product: toProduct(item.Product), Quantity: item.Quantity, Subtotal: item.Subtotal}
	}
	return Cart{Items: items, Total: v.Total}
}

func toFileInfo(v *queries.FileView) *FileInfo {
	if v == nil {
		return nil
	}
	return &FileInfo{Name: v.Name, Type: v.MimeType, Size: v.Size, SizeLabel: v.SizeLabel}
}

func toOrder(v queries.OrderView) Order {
	items := make([]CartItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = CartItem{Product: toProduct(item.Product), Quantity: item.Quantity, Subtotal: item.Subtotal}
	}
	return Order{
		ID:                     v.ID.Bytes(),
		UserID:                 v.UserID.Bytes(),
		UserEmail:              v.UserEmail,
		Items:                  items,
		TotalAmount:            v.TotalAmount,
		OrderDate:              v.OrderDate,
		Status:                 v.Status,
		IsServiceOrder:         v.IsServiceOrder,
		BuyerUploadedFile:      toFileInfo(v.BuyerUploadedFile),
		AdminUploadedReport:    toFileInfo(v.AdminUploadedReport),
		QRISImageURLForOrder:   v.QRISImageURL,
		Version:                v.Version,
		AvailableStatusChanges: v.AvailableStatusChanges,
	}
}

func toUploadedFile(f order.UploadedFile) UploadedFile {
	return UploadedFile{Name: f.Name(), Type: f.MimeType(), Size: f.Size(), DataURL: f.DataURI()}
}
