package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// idShape classifies the second segment of the routed pseudo-path.
type idShape int

const (
	shapeNone idShape = iota
	shapeNumeric
	shapeKeyword
)

// route is one row of the dispatch table: (verb, resource,
// identifier-shape) selects a handler. Rows are checked in order and
// the first match wins.
type route struct {
	method   string
	resource string
	shape    idShape
	keyword  string
	handler  func(c echo.Context, id string) error
}

type Dispatcher struct {
	routes    []route
	resources map[string]bool
}

func NewDispatcher(p *ProductHandler, u *UserHandler) *Dispatcher {
	return &Dispatcher{
		routes: []route{
			{http.MethodGet, "products", shapeNone, "", p.List},
			{http.MethodGet, "products", shapeNumeric, "", p.Get},
			{http.MethodGet, "products", shapeKeyword, "search", p.Search},
			{http.MethodPost, "products", shapeNone, "", p.Create},
			{http.MethodPut, "products", shapeNumeric, "", p.Update},
			{http.MethodDelete, "products", shapeNumeric, "", p.Delete},

			{http.MethodGet, "users", shapeNone, "", u.List},
			{http.MethodGet, "users", shapeNumeric, "", u.Get},
			{http.MethodPost, "users", shapeNone, "", u.Create},
			{http.MethodPut, "users", shapeNumeric, "", u.Update},
			{http.MethodDelete, "users", shapeNumeric, "", u.Delete},
		},
		resources: map[string]bool{"products": true, "users": true},
	}
}

// Handle serves the single routed endpoint. The resource and optional
// identifier come from splitting the `path` query parameter on "/".
func (d *Dispatcher) Handle(c echo.Context) error {
	resource, id := splitPath(c.QueryParam("path"))

	if !d.resources[resource] {
		// Echo the unrecognized token back for diagnostics.
		return c.JSON(http.StatusNotFound, echo.Map{
			"error":    "unknown resource",
			"resource": resource,
		})
	}

	shape := classify(id)
	method := c.Request().Method

	for _, r := range d.routes {
		if r.method != method || r.resource != resource || r.shape != shape {
			continue
		}
		if r.shape == shapeKeyword && r.keyword != id {
			continue
		}
		return r.handler(c, id)
	}

	// A GET with an identifier that matches no row is an invalid
	// route, not a disallowed verb.
	if method == http.MethodGet && shape != shapeNone {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "invalid route"})
	}
	return c.JSON(http.StatusMethodNotAllowed, echo.Map{"error": "method not allowed"})
}

func splitPath(path string) (resource, id string) {
	parts := strings.SplitN(strings.Trim(path, "/"), "/", 2)
	resource = parts[0]
	if len(parts) > 1 {
		id = parts[1]
	}
	return resource, id
}

func classify(id string) idShape {
	if id == "" {
		return shapeNone
	}
	if _, err := strconv.ParseUint(id, 10, 64); err == nil {
		return shapeNumeric
	}
	return shapeKeyword
}
