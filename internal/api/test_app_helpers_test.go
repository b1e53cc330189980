package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/steadyjournal/steady/internal/db"
	"github.com/steadyjournal/steady/internal/models"
	"github.com/steadyjournal/steady/internal/security"
	"github.com/steadyjournal/steady/internal/services"
	"github.com/stretchr/testify/require"
)

const testPassword = "secret12"

type testApp struct {
	app      *fiber.App
	handler  *Handler
	repos    *db.Repositories
	location *time.Location
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "steady_test.db"))
	require.NoError(t, err)
	repos := db.NewRepositories(database)

	location := services.DisplayLocation(8)
	handler := NewHandler(repos, "test-secret-key", location, false)

	// Pin the clock so every request in a test agrees on what "today" is.
	pinned := time.Now()
	handler.now = func() time.Time { return pinned }

	app := fiber.New()
	RegisterRoutes(app, handler)

	return &testApp{app: app, handler: handler, repos: repos, location: location}
}

func (ta *testApp) dayString(offsetDays int) string {
	day := services.DateAtLocation(ta.handler.now(), ta.location).AddDate(0, 0, offsetDays)
	return day.Format(dateParamLayout)
}

func uniqueEmail(t *testing.T) string {
	t.Helper()
	suffix, err := security.RandomString(8, "abcdefghijklmnopqrstuvwxyz")
	require.NoError(t, err)
	return fmt.Sprintf("user-%s@example.com", suffix)
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, authCookie string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	require.NoError(t, err)
	return response
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	payload := map[string]any{}
	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return string(raw)
}

func authCookieFromResponse(t *testing.T, response *http.Response) string {
	t.Helper()
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return fmt.Sprintf("%s=%s", authCookieName, cookie.Value)
		}
	}
	t.Fatal("auth cookie not set")
	return ""
}

// registerUser signs up a fresh account and returns its auth cookie and email.
func (ta *testApp) registerUser(t *testing.T, displayName string) (string, string) {
	t.Helper()

	email := uniqueEmail(t)
	response := performJSON(t, ta.app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":        email,
		"password":     testPassword,
		"display_name": displayName,
	})
	require.Equal(t, http.StatusCreated, response.StatusCode)
	return authCookieFromResponse(t, response), email
}

func (ta *testApp) promoteToAdmin(t *testing.T, email string) {
	t.Helper()

	user, found, err := ta.repos.Users.FindByEmail(email)
	require.NoError(t, err)
	require.True(t, found)
	require.NoError(t, ta.repos.Users.UpdateByID(user.ID, map[string]any{"role": models.RoleAdmin}))
}

func (ta *testApp) userIDByEmail(t *testing.T, email string) uint {
	t.Helper()

	user, found, err := ta.repos.Users.FindByEmail(email)
	require.NoError(t, err)
	require.True(t, found)
	return user.ID
}
