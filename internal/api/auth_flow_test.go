package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ta := newTestApp(t)

	response := performJSON(t, ta.app, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "ok", decodeBody(t, response)["status"])
}

func TestRegisterLoginMe(t *testing.T) {
	ta := newTestApp(t)

	cookie, email := ta.registerUser(t, "Ann")

	response := performJSON(t, ta.app, http.MethodGet, "/api/auth/me", cookie, nil)
	require.Equal(t, http.StatusOK, response.StatusCode)
	body := decodeBody(t, response)
	assert.Equal(t, email, body["email"])
	assert.Equal(t, "Ann", body["display_name"])
	assert.Equal(t, "user", body["role"])
	assert.EqualValues(t, 0, body["total_points"])

	// Re-login with the password.
	response = performJSON(t, ta.app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, response.StatusCode)
	authCookieFromResponse(t, response)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ta := newTestApp(t)
	_, email := ta.registerUser(t, "Ann")

	response := performJSON(t, ta.app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": testPassword,
	})
	assert.Equal(t, http.StatusConflict, response.StatusCode)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	ta := newTestApp(t)

	response := performJSON(t, ta.app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    uniqueEmail(t),
		"password": "lettersonly",
	})
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	ta := newTestApp(t)
	_, email := ta.registerUser(t, "Ann")

	response := performJSON(t, ta.app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "wrong-pass1",
	})
	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	ta := newTestApp(t)

	for _, path := range []string{"/api/auth/me", "/api/checkins", "/api/streak", "/api/symptoms", "/api/notifications"} {
		response := performJSON(t, ta.app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, response.StatusCode, path)
	}
}

func TestChangePassword(t *testing.T) {
	ta := newTestApp(t)
	cookie, email := ta.registerUser(t, "Ann")

	response := performJSON(t, ta.app, http.MethodPost, "/api/auth/change-password", cookie, map[string]any{
		"current_password": "not-the-password1",
		"new_password":     "newsecret12",
	})
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)

	response = performJSON(t, ta.app, http.MethodPost, "/api/auth/change-password", cookie, map[string]any{
		"current_password": testPassword,
		"new_password":     "newsecret12",
	})
	require.Equal(t, http.StatusOK, response.StatusCode)

	response = performJSON(t, ta.app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "newsecret12",
	})
	assert.Equal(t, http.StatusOK, response.StatusCode)
}

func TestDeleteAccountRemovesAccess(t *testing.T) {
	ta := newTestApp(t)
	cookie, email := ta.registerUser(t, "Ann")

	response := performJSON(t, ta.app, http.MethodDelete, "/api/auth/account", cookie, nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	// The stale token no longer resolves to a user.
	response = performJSON(t, ta.app, http.MethodGet, "/api/auth/me", cookie, nil)
	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)

	response = performJSON(t, ta.app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": testPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
}
