package routes

import (
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app := setupApp(t)

	resp := request(t, app, "POST", "/api/auth/register", fiber.Map{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	// The hashed password must never appear in a response
	assert.NotContains(t, string(body), "password")
	assert.Contains(t, string(body), "alice@example.com")
	assert.Contains(t, string(body), "token")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := setupApp(t)
	registerUser(t, app, "alice", "alice@example.com")

	resp := request(t, app, "POST", "/api/auth/register", fiber.Map{
		"username": "clone",
		"email":    "alice@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app := setupApp(t)

	resp := request(t, app, "POST", "/api/auth/register", fiber.Map{
		"username": "alice",
		"email":    "not-an-email",
		"password": "tiny",
	}, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	decode(t, resp, &out)
	fields := make([]string, 0, len(out.Errors))
	for _, fe := range out.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"email", "password"}, fields)
}

func TestLogin(t *testing.T) {
	app := setupApp(t)
	registerUser(t, app, "alice", "alice@example.com")

	resp := request(t, app, "POST", "/api/auth/login", fiber.Map{
		"email":    "alice@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out AuthResponse
	decode(t, resp, &out)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "alice", out.User.Username)
}

func TestLoginBadCredentials(t *testing.T) {
	app := setupApp(t)
	registerUser(t, app, "alice", "alice@example.com")

	resp := request(t, app, "POST", "/api/auth/login", fiber.Map{
		"email":    "alice@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, "POST", "/api/auth/login", fiber.Map{
		"email":    "nobody@example.com",
		"password": "secret123",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRejectsInvalidToken(t *testing.T) {
	app := setupApp(t)

	resp := request(t, app, "POST", "/api/categories", fiber.Map{"name": "News"}, "not-a-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
