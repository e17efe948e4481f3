package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tiendaropa/backoffice/internal/models"
	"github.com/tiendaropa/backoffice/internal/service"
	"github.com/tiendaropa/backoffice/internal/session"
	"github.com/tiendaropa/backoffice/internal/transport"
)

const sessionCookie = "session_token"

type AuthHandler struct {
	Svc      *service.AuthService
	Sessions session.Store
}

func sessionCookieFor(token string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	v := &service.ValidationError{}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		v.Add("email", "email is required")
	}
	if req.Password == "" {
		v.Add("password", "password is required")
	}
	if err := v.OrNil(); err != nil {
		return fail(c, err)
	}

	sess, err := h.Svc.Login(c.Request().Context(), email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	c.SetCookie(sessionCookieFor(sess.Token, sess.ExpiresAt))
	return c.JSON(http.StatusOK, transport.SessionResponse{
		UserID:   sess.UserID,
		UserName: sess.UserName,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if ck, err := c.Cookie(sessionCookie); err == nil {
		if err := h.Svc.Logout(c.Request().Context(), ck.Value); err != nil {
			return fail(c, err)
		}
	}
	c.SetCookie(sessionCookieFor("", time.Now().Add(-time.Hour)))
	return c.Redirect(http.StatusSeeOther, "/")
}

// Session returns the logged-in identity established by RequireSession.
func (h *AuthHandler) Session(c echo.Context) error {
	sess := c.Get(sessionContextKey).(*models.Session)
	return c.JSON(http.StatusOK, transport.SessionResponse{
		UserID:   sess.UserID,
		UserName: sess.UserName,
	})
}
