package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tiendaropa/backoffice/internal/session"
)

type Deps struct {
	ProductHandler *ProductHandler
	UserHandler    *UserHandler
	AuthHandler    *AuthHandler
	Sessions       session.Store
}

// Register wires the single routed CRUD endpoint plus the auth flow.
// All CRUD requests arrive as /api?path=<resource>[/<id>]; login and
// logout live outside the dispatcher.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	dispatcher := NewDispatcher(d.ProductHandler, d.UserHandler)
	e.Any("/api", dispatcher.Handle)

	e.POST("/api/login", d.AuthHandler.Login)
	e.POST("/api/logout", d.AuthHandler.Logout)
	e.GET("/api/session", d.AuthHandler.Session, RequireSession(d.Sessions))
}
