package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// ListOrders handles GET /api/v1/orders. Admins get every order, buyers
// their own, newest first.
func (s *Server) ListOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(actor)
	if err != nil {
		return err
	}
	views, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return c.JSON(http.StatusOK, response)
}

// Checkout handles POST /api/v1/orders. The order is built from the
// caller's stored cart; client-side totals are never read.
func (s *Server) Checkout(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCheckoutCommand(actor, kernel.NewUUID())
	if err != nil {
		return err
	}
	placed, err := s.h.Checkout.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toOrder(queries.NewOrderView(actor, placed)))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	actor, orderID, err := orderRoute(c)
	if err != nil {
		return err
	}
	return s.respondOrder(c, actor, orderID)
}

// GetOrderTransitions handles GET /api/v1/orders/:id/transitions (admin).
func (s *Server) GetOrderTransitions(c echo.Context) error {
	actor, orderID, err := orderRoute(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderTransitionsQuery(actor, orderID)
	if err != nil {
		return err
	}
	view, err := s.h.GetOrderTransitions.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Transitions{
		OrderID:   view.OrderID.Bytes(),
		Status:    view.Status,
		Version:   view.Version,
		Available: view.Available,
	})
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status, the admin status selector.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	actor, orderID, err := orderRoute(c)
	if err != nil {
		return err
	}
	var req ChangeStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actor, orderID, req.ExpectedVersion, target)
	if err != nil {
		return err
	}
	if err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(c, actor, orderID)
}

// GetOrderDocument handles GET /api/v1/orders/:id/document.
func (s *Server) GetOrderDocument(c echo.Context) error {
	actor, orderID, err := orderRoute(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderDocumentQuery(actor, orderID)
	if err != nil {
		return err
	}
	doc, err := s.h.GetOrderDocument.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUploadedFile(doc))
}

// UploadDocument handles POST /api/v1/orders/:id/document (buyer, owner).
func (s *Server) UploadDocument(c echo.Context) error {
	actor, orderID, err := orderRoute(c)
	if err != nil {
		return err
	}
	var req UploadRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	f := req.File
	cmd, err := commands.NewUploadDocumentCommand(actor, orderID, req.ExpectedVersion, f.Name, f.Type, f.Size, f.DataURL)
	if err != nil {
		return err
	}
	if err := s.h.UploadDocument.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(c, actor, orderID)
}

// UploadReport handles POST /api/v1/orders/:id/report (admin).
func (s *Server) UploadReport(c echo.Context) error {
	actor, orderID, err := orderRoute(c)
	if err != nil {
		return err
	}
	var req UploadRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	f := req.File
	cmd, err := commands.NewUploadReportCommand(actor, orderID, req.ExpectedVersion, f.Name, f.Type, f.Size, f.DataURL)
	if err != nil {
		return err
	}
	if err := s.h.UploadReport.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(c, actor, orderID)
}

// ConfirmPayment handles POST /api/v1/orders/:id/payment-confirmation (admin).
func (s *Server) ConfirmPayment(c echo.Context) error {
	actor, orderID, err := orderRoute(c)
	if err != nil {
		return err
	}
	var req VersionedRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewConfirmPaymentCommand(actor, orderID, req.ExpectedVersion)
	if err != nil {
		return err
	}
	if err := s.h.ConfirmPayment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(c, actor, orderID)
}

// DownloadReport handles POST /api/v1/orders/:id/report/download (buyer, owner).
// Repeated downloads return the same report.
func (s *Server) DownloadReport(c echo.Context) error {
	actor, orderID, err := orderRoute(c)
	if err != nil {
		return err
	}
	var req VersionedRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewDownloadReportCommand(actor, orderID, req.ExpectedVersion)
	if err != nil {
		return err
	}
	report, err := s.h.DownloadReport.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUploadedFile(report))
}

// GetPaymentQR handles GET /api/v1/orders/:id/payment-qr as image/png.
func (s *Server) GetPaymentQR(c echo.Context) error {
	actor, orderID, err := orderRoute(c)
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size", s.defaultQRSize)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPaymentQRQuery(actor, orderID, size)
	if err != nil {
		return err
	}
	png, err := s.h.GetPaymentQR.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func orderRoute(c echo.Context) (kernel.Actor, kernel.UUID, error) {
	actor, err := actorFrom(c)
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}
	return actor, orderID, nil
}

func (s *Server) respondOrder(c echo.Context, actor kernel.Actor, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return err
	}
	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrder(view))
}
