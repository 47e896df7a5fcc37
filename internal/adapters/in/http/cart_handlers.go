package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
)

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	return s.respondCart(c, actor)
}

// AddCartItem handles POST /api/v1/cart/items. Adding a product already in
// the cart increments its quantity.
func (s *Server) AddCartItem(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req AddCartItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	productID, err := kernel.UUIDFromBytes(req.ProductID[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddCartItemCommand(actor, productID)
	if err != nil {
		return err
	}
	if err := s.h.AddCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondCart(c, actor)
}

// UpdateCartItem handles PUT /api/v1/cart/items/:productId. A quantity of
// zero or less removes the item.
func (s *Server) UpdateCartItem(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}
	var req UpdateCartItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCartItemCommand(actor, productID, *req.Quantity)
	if err != nil {
		return err
	}
	if err := s.h.UpdateCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondCart(c, actor)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:productId.
func (s *Server) RemoveCartItem(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveCartItemCommand(actor, productID)
	if err != nil {
		return err
	}
	if err := s.h.RemoveCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondCart(c, actor)
}

func (s *Server) respondCart(c echo.Context, actor kernel.Actor) error {
	query, err := queries.NewGetCartQuery(actor)
	if err != nil {
		return err
	}
	view, err := s.h.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCart(view))
}
