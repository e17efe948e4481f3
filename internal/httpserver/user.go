package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tiendaropa/backoffice/internal/events"
	"github.com/tiendaropa/backoffice/internal/logging"
	"github.com/tiendaropa/backoffice/internal/service"
	"github.com/tiendaropa/backoffice/internal/transport"
)

type UserHandler struct {
	Svc      *service.UserService
	Producer *events.Producer
}

func (h *UserHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", fmt.Sprint(event["user_id"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *UserHandler) List(c echo.Context, _ string) error {
	items, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *UserHandler) Get(c echo.Context, idToken string) error {
	id, ok := parseID(idToken)
	if !ok {
		return badRequest(c, "invalid id")
	}
	user, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c echo.Context, _ string) error {
	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	user, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}

	h.publish(c, map[string]any{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c echo.Context, idToken string) error {
	id, ok := parseID(idToken)
	if !ok {
		return badRequest(c, "invalid id")
	}

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	user, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return fail(c, err)
	}

	h.publish(c, map[string]any{
		"type":    "user_updated",
		"user_id": user.ID,
		"email":   user.Email,
	})
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c echo.Context, idToken string) error {
	id, ok := parseID(idToken)
	if !ok {
		return badRequest(c, "invalid id")
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}

	h.publish(c, map[string]any{
		"type":    "user_deleted",
		"user_id": id,
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted"})
}
