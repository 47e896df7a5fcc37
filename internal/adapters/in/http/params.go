package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"storefront/internal/core/domain/model/kernel"
)

// pathUUID binds the path parameter name the way generated servers do.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, c.Param(name), &id)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name+": "+err.Error())
	}
	return kernel.UUIDFromBytes(id[:])
}

// queryInt binds an optional integer query parameter, returning fallback when absent.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	var value *int
	err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name+": "+err.Error())
	}
	if value == nil {
		return fallback, nil
	}
	return *value, nil
}

// bind decodes the JSON body into req and validates its tags.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return c.Validate(req)
}
