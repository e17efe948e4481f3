package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tiendaropa/backoffice/internal/events"
	"github.com/tiendaropa/backoffice/internal/logging"
	"github.com/tiendaropa/backoffice/internal/service"
	"github.com/tiendaropa/backoffice/internal/transport"
)

type ProductHandler struct {
	Svc      *service.ProductService
	Producer *events.Producer
}

func (h *ProductHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", fmt.Sprint(event["product_id"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *ProductHandler) List(c echo.Context, _ string) error {
	items, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) Get(c echo.Context, idToken string) error {
	id, ok := parseID(idToken)
	if !ok {
		return badRequest(c, "invalid id")
	}
	prod, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHandler) Create(c echo.Context, _ string) error {
	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	prod, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		return fail(c, err)
	}

	h.publish(c, map[string]any{
		"type":       "product_created",
		"product_id": prod.ID,
		"name":       prod.Name,
	})
	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHandler) Update(c echo.Context, idToken string) error {
	id, ok := parseID(idToken)
	if !ok {
		return badRequest(c, "invalid id")
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	prod, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return fail(c, err)
	}

	h.publish(c, map[string]any{
		"type":       "product_updated",
		"product_id": prod.ID,
		"name":       prod.Name,
	})
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHandler) Delete(c echo.Context, idToken string) error {
	id, ok := parseID(idToken)
	if !ok {
		return badRequest(c, "invalid id")
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}

	h.publish(c, map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted"})
}

func (h *ProductHandler) Search(c echo.Context, _ string) error {
	items, err := h.Svc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// parseID validates the identifier token before any data access
// happens; every non-numeric token is rejected here with a 400.
func parseID(idToken string) (uint, bool) {
	v, err := strconv.ParseUint(idToken, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
