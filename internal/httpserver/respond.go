package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tiendaropa/backoffice/internal/logging"
	"github.com/tiendaropa/backoffice/internal/service"
)

// fail converts a service error into the HTTP response for it. Internal
// failures are logged with full detail but never echoed to the client.
func fail(c echo.Context, err error) error {
	var v *service.ValidationError
	switch {
	case errors.As(err, &v):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "validation failed",
			"fields": v.Fields,
		})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, service.ErrEmailTaken):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid email or password"})
	default:
		logging.FromContext(c.Request().Context()).Error("request failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}
