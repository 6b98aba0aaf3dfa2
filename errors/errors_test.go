package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/VinukaThejana/immerzo/store"
	"github.com/VinukaThejana/immerzo/upload"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "store unavailable", err: fmt.Errorf("failed to store the franchise inquiry: %w", store.ErrUnavailable), want: "The document store is not connected"},
		{name: "store write", err: fmt.Errorf("failed to store the otp request: %w", fmt.Errorf("%w: timeout", store.ErrWrite)), want: "Failed to persist the document"},
		{name: "upload io", err: fmt.Errorf("failed to save the floorplan: %w", upload.ErrIO), want: "Failed to save the floorplan"},
		{name: "other", err: fmt.Errorf("boom"), want: "Request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{name: "invalid otp", err: ErrInvalidOTP, status: fiber.StatusBadRequest, detail: "Invalid OTP"},
		{name: "otp required", err: ErrOTPRequired, status: fiber.StatusBadRequest, detail: "OTP required"},
		{name: "invalid filename", err: fmt.Errorf("failed to save the floorplan: %w", upload.ErrInvalidFilename), status: fiber.StatusBadRequest, detail: "invalid_filename"},
		{name: "store unavailable", err: fmt.Errorf("failed to fetch the otp request: %w", store.ErrUnavailable), status: fiber.StatusInternalServerError, detail: "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return Respond(c, tt.err)
			})

			res, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer res.Body.Close()

			raw, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &body))

			assert.Equal(t, tt.status, res.StatusCode)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.detail, body["detail"])
		})
	}
}
