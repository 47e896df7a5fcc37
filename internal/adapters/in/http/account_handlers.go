package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
)

// Login handles POST /api/v1/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return err
	}
	result, err := s.h.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, LoginResponse{
		ID:        result.UserID.Bytes(),
		Email:     result.Email,
		Role:      result.Role.String(),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// Register handles POST /api/v1/register. Only buyer accounts can be created.
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), req.Email, req.Password, req.ConfirmPassword, req.Role)
	if err != nil {
		return err
	}
	if err := s.h.Register.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, User{
		ID:    cmd.UserID().Bytes(),
		Email: cmd.Email(),
		Role:  kernel.RoleBuyer.String(),
	})
}
