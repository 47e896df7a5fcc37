package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
)

// GetSettings handles GET /api/v1/settings (admin).
func (s *Server) GetSettings(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	return s.respondSettings(c, actor)
}

// UpdateSettings handles PUT /api/v1/settings (admin). Existing service
// orders keep the QR image URL they were placed with.
func (s *Server) UpdateSettings(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req SettingsInput
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateSettingsCommand(actor, req.QRISImageURL)
	if err != nil {
		return err
	}
	if err := s.h.UpdateSettings.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondSettings(c, actor)
}

func (s *Server) respondSettings(c echo.Context, actor kernel.Actor) error {
	query, err := queries.NewGetSettingsQuery(actor)
	if err != nil {
		return err
	}
	view, err := s.h.GetSettings.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Settings{QRISImageURL: view.QRISImageURL, IsDefault: view.IsDefault})
}
