package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tiendaropa/backoffice/internal/db"
	"github.com/tiendaropa/backoffice/internal/repo"
	"github.com/tiendaropa/backoffice/internal/service"
	"github.com/tiendaropa/backoffice/internal/session"
)

type testEnv struct {
	t        *testing.T
	e        *echo.Echo
	db       *gorm.DB
	store    *session.GormStore
	products *ProductHandler
	users    *UserHandler
	auth     *AuthHandler
}

func newTestEnv(t *testing.T) *testEnv {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	r := &repo.GormRepo{DB: gdb}
	store := session.NewGormStore(gdb, time.Hour)

	env := &testEnv{
		t:     t,
		e:     echo.New(),
		db:    gdb,
		store: store,
		products: &ProductHandler{
			Svc: &service.ProductService{Repo: r},
		},
		users: &UserHandler{
			Svc: &service.UserService{Repo: r},
		},
		auth: &AuthHandler{
			Svc:      &service.AuthService{Repo: r, Sessions: store},
			Sessions: store,
		},
	}

	Register(env.e, &Deps{
		ProductHandler: env.products,
		UserHandler:    env.users,
		AuthHandler:    env.auth,
		Sessions:       store,
	})

	return env
}

// do runs one request through the full echo stack, dispatcher included.
func (env *testEnv) do(method, target string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// newContext builds a bare echo context for invoking a handler method
// directly, bypassing the dispatch table.
func (env *testEnv) newContext(method string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, env.e.NewContext(req, rec)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
