package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createPayload struct {
	UserId string `json:"userId" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

func newErrorApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: NewErrorHandler(nopLogger{}),
	})
	app.Get("/invalid", func(ctx *fiber.Ctx) error {
		return ValidateRequest(createPayload{})
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("pq: connection refused")
	})
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "session not found")
	})
	return app
}

func TestErrorHandlerValidationDetails(t *testing.T) {
	app := newErrorApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/invalid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error   string       `json:"error"`
		Details []FieldError `json:"details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Validation failed", body.Error)
	require.Len(t, body.Details, 2)
	assert.Equal(t, "userId", body.Details[0].Field)
	assert.Equal(t, "is required", body.Details[0].Message)
	assert.Equal(t, "name", body.Details[1].Field)
}

func TestErrorHandlerHidesInternalDetail(t *testing.T) {
	app := newErrorApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "internal server error", body["error"])
	assert.NotContains(t, body["error"], "pq:")
}

func TestErrorHandlerKeepsFiberStatus(t *testing.T) {
	app := newErrorApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "session not found", body["error"])
}

func TestErrorHandlerMethodNotAllowed(t *testing.T) {
	app := newErrorApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}
