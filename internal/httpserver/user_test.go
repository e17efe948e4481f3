package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiendaropa/backoffice/internal/hash"
	"github.com/tiendaropa/backoffice/internal/models"
)

func createTestUser(t *testing.T, env *testEnv, name, email string) models.User {
	t.Helper()
	pwHash, err := hash.HashPassword("secreto123")
	require.NoError(t, err)
	user := models.User{FullName: name, Email: email, PasswordHash: pwHash}
	require.NoError(t, env.db.Create(&user).Error)
	return user
}

func TestUserCreate(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api?path=users", map[string]interface{}{
		"full_name": "Ana Molina",
		"email":     "ana@example.com",
		"password":  "secreto123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]interface{}
	decodeJSON(t, rec, &created)
	require.Equal(t, "Ana Molina", created["full_name"])
	require.NotContains(t, created, "password")

	// The stored credential is a hash, never the raw password.
	var stored models.User
	require.NoError(t, env.db.First(&stored).Error)
	require.NotEqual(t, "secreto123", stored.PasswordHash)
	require.True(t, hash.CheckPassword(stored.PasswordHash, "secreto123"))
}

func TestUserCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api?path=users", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	decodeJSON(t, rec, &resp)
	require.Len(t, resp.Fields, 3)

	rec = env.do(http.MethodPost, "/api?path=users", map[string]interface{}{
		"full_name": "Ana Molina",
		"email":     "ana@example.com",
		"password":  "corta",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	existing := createTestUser(t, env, "Ana Molina", "ana@example.com")

	rec := env.do(http.MethodPost, "/api?path=users", map[string]interface{}{
		"full_name": "Otra Ana",
		"email":     "ana@example.com",
		"password":  "secreto123",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	// The original record is untouched.
	var stored models.User
	require.NoError(t, env.db.First(&stored, existing.ID).Error)
	require.Equal(t, "Ana Molina", stored.FullName)

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestUserUpdate(t *testing.T) {
	env := newTestEnv(t)
	ana := createTestUser(t, env, "Ana Molina", "ana@example.com")
	luis := createTestUser(t, env, "Luis Vega", "luis@example.com")

	// Keeping the current email never conflicts.
	rec := env.do(http.MethodPut, fmt.Sprintf("/api?path=users/%d", ana.ID), map[string]interface{}{
		"full_name": "Ana M. Molina",
		"email":     "ana@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Taking another user's email does.
	rec = env.do(http.MethodPut, fmt.Sprintf("/api?path=users/%d", luis.ID), map[string]interface{}{
		"full_name": "Luis Vega",
		"email":     "ana@example.com",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(http.MethodPut, "/api?path=users/9999", map[string]interface{}{
		"full_name": "Nadie",
		"email":     "nadie@example.com",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	// The password survives any update.
	var stored models.User
	require.NoError(t, env.db.First(&stored, ana.ID).Error)
	require.Equal(t, "Ana M. Molina", stored.FullName)
	require.True(t, hash.CheckPassword(stored.PasswordHash, "secreto123"))
}

func TestUserResponsesNeverCarryPassword(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env, "Ana Molina", "ana@example.com")

	rec := env.do(http.MethodGet, "/api?path=users", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	decodeJSON(t, rec, &list)
	require.Len(t, list, 1)
	for key := range list[0] {
		require.NotContains(t, key, "password")
		require.NotContains(t, key, "Password")
	}

	rec = env.do(http.MethodGet, fmt.Sprintf("/api?path=users/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var single map[string]interface{}
	decodeJSON(t, rec, &single)
	require.NotContains(t, single, "password")
}

func TestUserDelete(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env, "Ana Molina", "ana@example.com")

	rec := env.do(http.MethodDelete, fmt.Sprintf("/api?path=users/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodDelete, fmt.Sprintf("/api?path=users/%d", user.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
