package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tiendaropa/backoffice/internal/session"
)

const sessionContextKey = "session"

// RequireSession gates a route on a valid session cookie and makes the
// session record available to the handler.
func RequireSession(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(sessionCookie)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login required"})
			}

			sess, err := store.Get(c.Request().Context(), ck.Value)
			if errors.Is(err, session.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login required"})
			}
			if err != nil {
				return fail(c, err)
			}

			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}
