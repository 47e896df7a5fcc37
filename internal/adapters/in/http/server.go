// Package http is the inbound HTTP adapter: echo handlers translating JSON
// requests into commands and queries, plus the middlewares around them.
package http

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/order"
)

// CommandHandler handles a command that produces no result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// RequestHandler handles a command or query that produces a result.
type RequestHandler[C, R any] interface {
	Handle(ctx context.Context, req C) (R, error)
}

// Handlers lists the use cases the server delegates to.
type Handlers struct {
	// Account
	Login    RequestHandler[commands.LoginCommand, commands.LoginResult]
	Register CommandHandler[commands.RegisterUserCommand]

	// Catalog
	ListProducts  RequestHandler[queries.ListProductsQuery, []queries.ProductView]
	GetProduct    RequestHandler[queries.GetProductQuery, queries.ProductView]
	CreateProduct CommandHandler[commands.CreateProductCommand]
	UpdateProduct CommandHandler[commands.UpdateProductCommand]
	DeleteProduct CommandHandler[commands.DeleteProductCommand]

	// Cart
	GetCart        RequestHandler[queries.GetCartQuery, queries.CartView]
	AddCartItem    CommandHandler[commands.AddCartItemCommand]
	UpdateCartItem CommandHandler[commands.UpdateCartItemCommand]
	RemoveCartItem CommandHandler[commands.RemoveCartItemCommand]

	// Orders
	Checkout            RequestHandler[commands.CheckoutCommand, *order.Order]
	ListOrders          RequestHandler[queries.ListOrdersQuery, []queries.OrderView]
	GetOrder            RequestHandler[queries.GetOrderQuery, queries.OrderView]
	GetOrderTransitions RequestHandler[queries.GetOrderTransitionsQuery, queries.TransitionsView]
	GetOrderDocument    RequestHandler[queries.GetOrderDocumentQuery, order.UploadedFile]
	GetPaymentQR        RequestHandler[queries.GetPaymentQRQuery, []byte]
	ChangeOrderStatus   CommandHandler[commands.ChangeOrderStatusCommand]
	UploadDocument      CommandHandler[commands.UploadDocumentCommand]
	UploadReport        CommandHandler[commands.UploadReportCommand]
	ConfirmPayment      CommandHandler[commands.ConfirmPaymentCommand]
	DownloadReport      RequestHandler[commands.DownloadReportCommand, order.UploadedFile]

	// Settings
	GetSettings    RequestHandler[queries.GetSettingsQuery, queries.SettingsView]
	UpdateSettings CommandHandler[commands.UpdateSettingsCommand]
}

// Server implements the HTTP API. It coordinates between HTTP handlers and
// application use cases; authorization is decided by the use cases.
type Server struct {
	h             Handlers
	defaultQRSize int
}

// NewServer creates a server. defaultQRSize is used when a payment QR
// request carries no size.
func NewServer(h Handlers, defaultQRSize int) *Server {
	return &Server{h: h, defaultQRSize: defaultQRSize}
}
