package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatchUnknownResource(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api?path=invoices", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	decodeJSON(t, rec, &resp)
	require.Equal(t, "invoices", resp["resource"])
}

func TestDispatchProductRoutes(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api?path=products", http.StatusOK},
		{http.MethodGet, "/api?path=products/9999", http.StatusNotFound},
		{http.MethodGet, "/api?path=products/search&q=x", http.StatusOK},
		{http.MethodGet, "/api?path=products/foo", http.StatusNotFound},
		{http.MethodPost, "/api?path=products/5", http.StatusMethodNotAllowed},
		{http.MethodPatch, "/api?path=products", http.StatusMethodNotAllowed},
		{http.MethodPut, "/api?path=products", http.StatusMethodNotAllowed},
		{http.MethodPut, "/api?path=products/abc", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/api?path=products", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		rec := env.do(tc.method, tc.path, nil)
		require.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestDispatchUserRoutes(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api?path=users", http.StatusOK},
		{http.MethodGet, "/api?path=users/9999", http.StatusNotFound},
		// Users have no search variant.
		{http.MethodGet, "/api?path=users/search&q=x", http.StatusNotFound},
		{http.MethodPost, "/api?path=users/3", http.StatusMethodNotAllowed},
		{http.MethodPatch, "/api?path=users", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/api?path=users", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		rec := env.do(tc.method, tc.path, nil)
		require.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestDispatchTrailingSegments(t *testing.T) {
	env := newTestEnv(t)

	// Leading/trailing slashes collapse to the same resource token.
	rec := env.do(http.MethodGet, "/api?path=/products/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
