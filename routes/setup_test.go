package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"blogapi/config"
	"blogapi/db"
	"blogapi/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// setupApp builds a Fiber app with all routes against a fresh database.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.Load()
	config.AppConfig.UploadDir = t.TempDir()
	config.AppConfig.CascadeDelete = false
	db.InitDatabase(filepath.Join(t.TempDir(), "test.db"))

	app := fiber.New()
	SetupRoutes(app)
	return app
}

func request(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func registerUser(t *testing.T, app *fiber.App, username, email string) string {
	t.Helper()

	resp := request(t, app, "POST", "/api/auth/register", fiber.Map{
		"username": username,
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out AuthResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func createTestCategory(t *testing.T, app *fiber.App, token, name string) models.Category {
	t.Helper()

	resp := request(t, app, "POST", "/api/categories", fiber.Map{"name": name}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var category models.Category
	decode(t, resp, &category)
	return category
}

func createTestPost(t *testing.T, app *fiber.App, token, title, content string, categoryID uint) models.Post {
	t.Helper()

	resp := request(t, app, "POST", "/api/posts", fiber.Map{
		"title":    title,
		"content":  content,
		"category": categoryID,
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var post models.Post
	decode(t, resp, &post)
	return post
}
