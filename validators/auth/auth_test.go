package authValidator

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Post("/t", handler, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) (int, string) {
	req := httptest.NewRequest("POST", "/t", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestSendCodeValidPayload(t *testing.T) {
	app := testApp(SendCode())

	status, _ := postJSON(t, app, `{
		"firstname": "Maria",
		"lastname": "Santos",
		"student_id": "2026-0001",
		"year": "2nd Year",
		"gender": "Female",
		"email": "maria@example.com",
		"password": "secret-password"
	}`)

	assert.Equal(t, fiber.StatusOK, status)
}

func TestSendCodeRejectsBadFields(t *testing.T) {
	app := testApp(SendCode())

	status, body := postJSON(t, app, `{
		"firstname": "M",
		"lastname": "Santos",
		"student_id": "20",
		"year": "5th Year",
		"email": "not-an-email",
		"password": "short"
	}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "firstname")
	assert.Contains(t, body, "student_id")
	assert.Contains(t, body, "year")
	assert.Contains(t, body, "email")
	assert.Contains(t, body, "password")
}

func TestVerifyCodeRequiresSixDigits(t *testing.T) {
	app := testApp(VerifyCode())

	status, body := postJSON(t, app, `{"email": "maria@example.com", "code": "12ab56"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "code")

	status, _ = postJSON(t, app, `{"email": "maria@example.com", "code": "123456"}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestLoginRequiresCredentials(t *testing.T) {
	app := testApp(Login())

	status, body := postJSON(t, app, `{"student_id": "", "password": ""}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body, "student_id")
	assert.Contains(t, body, "password")
}

func TestResetPasswordLength(t *testing.T) {
	app := testApp(ResetPassword())

	status, _ := postJSON(t, app, `{"password": "short"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, _ = postJSON(t, app, `{"password": "long-enough-pass"}`)
	assert.Equal(t, fiber.StatusOK, status)
}
