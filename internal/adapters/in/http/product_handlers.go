package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(c echo.Context) error {
	views, err := s.h.ListProducts.Handle(c.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return err
	}

	response := make([]Product, len(views))
	for i, v := range views {
		response[i] = toProduct(v)
	}
	return c.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return s.respondProduct(c, http.StatusOK, productID)
}

// CreateProduct handles POST /api/v1/products (admin).
func (s *Server) CreateProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req ProductInput
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(actor, kernel.NewUUID(), req.details())
	if err != nil {
		return err
	}
	if err := s.h.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondProduct(c, http.StatusCreated, cmd.ProductID())
}

// UpdateProduct handles PUT /api/v1/products/:id (admin).
func (s *Server) UpdateProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var req ProductInput
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductCommand(actor, productID, req.details())
	if err != nil {
		return err
	}
	if err := s.h.UpdateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondProduct(c, http.StatusOK, productID)
}

// DeleteProduct handles DELETE /api/v1/products/:id (admin). Orders keep
// their snapshots of the deleted product.
func (s *Server) DeleteProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteProductCommand(actor, productID)
	if err != nil {
		return err
	}
	if err := s.h.DeleteProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) respondProduct(c echo.Context, status int, productID kernel.UUID) error {
	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return err
	}
	view, err := s.h.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toProduct(view))
}

func (r ProductInput) details() product.Details {
	return product.Details{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		IsService:   r.IsService,
	}
}
