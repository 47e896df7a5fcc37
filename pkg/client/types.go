package client

import (
	"time"

	"github.com/google/uuid"
)

// Session is the result of a successful login.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
	Role            string `json:"role,omitempty"`
}

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	IsService   bool      `json:"isService"`
}

type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal int64   `json:"subtotal"`
}

// FileInfo describes a file attached to an order.
type FileInfo struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Size      int64  `json:"size"`
	SizeLabel string `json:"sizeLabel"`
}

type Order struct {
	ID                     uuid.UUID   `json:"id"`
	UserID                 uuid.UUID   `json:"userId"`
	UserEmail              string      `json:"userEmail"`
	Items                  []OrderItem `json:"items"`
	TotalAmount            int64       `json:"totalAmount"`
	OrderDate              time.Time   `json:"orderDate"`
	Status                 string      `json:"status"`
	IsServiceOrder         bool        `json:"isServiceOrder"`
	BuyerUploadedFile      *FileInfo   `json:"buyerUploadedFile,omitempty"`
	AdminUploadedReport    *FileInfo   `json:"adminUploadedReport,omitempty"`
	QRISImageURLForOrder   string      `json:"qrisImageUrlForOrder,omitempty"`
	Version                int         `json:"version"`
	AvailableStatusChanges []string    `json:"availableStatusChanges"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addCartItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
}

type changeStatusRequest struct {
	Status          string `json:"status"`
	ExpectedVersion int    `json:"expectedVersion"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
