package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"storefront/internal/adapters/in/http/api"
	"storefront/internal/core/ports"
)

// RouterConfig carries what NewRouter needs besides the server.
type RouterConfig struct {
	ServiceName string
	Logger      *slog.Logger
	Tokens      ports.TokenIssuer
	// BodyLimit caps request bodies, e.g. "8M". Uploads travel as base64 JSON.
	BodyLimit string
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// NewRouter builds the echo instance with every API route registered.
func NewRouter(ctx context.Context, s *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	validateRequests, err := ValidateRequests(doc)
	if err != nil {
		return nil, err
	}
	if err := registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(cfg.ServiceName)))
	e.Use(AccessLog(cfg.Logger))
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}

	e.GET("/health", HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	public := []echo.MiddlewareFunc{validateRequests}
	private := []echo.MiddlewareFunc{Authenticate(cfg.Tokens), validateRequests}

	v1 := e.Group("/api/v1")

	v1.POST("/login", s.Login, public...)
	v1.POST("/register", s.Register, public...)

	v1.GET("/products", s.ListProducts, public...)
	v1.GET("/products/:id", s.GetProduct, public...)
	v1.POST("/products", s.CreateProduct, private...)
	v1.PUT("/products/:id", s.UpdateProduct, private...)
	v1.DELETE("/products/:id", s.DeleteProduct, private...)

	v1.GET("/cart", s.GetCart, private...)
	v1.POST("/cart/items", s.AddCartItem, private...)
	v1.PUT("/cart/items/:productId", s.UpdateCartItem, private...)
	v1.DELETE("/cart/items/:productId", s.RemoveCartItem, private...)

	v1.GET("/orders", s.ListOrders, private...)
	v1.POST("/orders", s.Checkout, private...)
	v1.GET("/orders/:id", s.GetOrder, private...)
	v1.GET("/orders/:id/transitions", s.GetOrderTransitions, private...)
	v1.PUT("/orders/:id/status", s.ChangeOrderStatus, private...)
	v1.GET("/orders/:id/document", s.GetOrderDocument, private...)
	v1.POST("/orders/:id/document", s.UploadDocument, private...)
	v1.POST("/orders/:id/report", s.UploadReport, private...)
	v1.POST("/orders/:id/payment-confirmation", s.ConfirmPayment, private...)
	v1.POST("/orders/:id/report/download", s.DownloadReport, private...)
	v1.GET("/orders/:id/payment-qr", s.GetPaymentQR, private...)

	v1.GET("/settings", s.GetSettings, private...)
	v1.PUT("/settings", s.UpdateSettings, private...)

	return e, nil
}

// swaggerDoc serves the OpenAPI document to the swagger UI.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string { return d.json }

func registerSwaggerDoc(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshal openapi document")
	}
	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	}
	return nil
}
