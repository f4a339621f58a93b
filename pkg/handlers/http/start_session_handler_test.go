package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	"github.com/NeonArcade/PlayBill/pkg/domain"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/NeonArcade/PlayBill/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartSessionHandler_Handle(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	starter := new(starterMock)
	handler := NewStartSessionHandler(logger, starter)

	app := fiber.New()
	app.Post("/api/v1/sessions", handler.Handle)

	t.Run("starts a walk-in session", func(t *testing.T) {
		deviceID := uuid.New()
		reqBody := request.StartSessionRequest{
			DeviceID:        deviceID.String(),
			CustomerName:    "Omar",
			DurationMinutes: 60,
		}
		body, err := json.Marshal(reqBody)
		require.NoError(t, err)

		created := &domainSession.Session{
			ID:              uuid.New(),
			DeviceID:        deviceID,
			CustomerName:    "Omar",
			DurationMinutes: 60,
			StartTime:       time.Now(),
			Status:          domainSession.StatusActive,
		}
		starter.On("Start", mock.Anything, mock.MatchedBy(func(input appSession.StartInput) bool {
			return input.DeviceID == deviceID && input.CustomerName == "Omar"
		})).Return(created, nil).Once()

		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/sessions", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		starter.AssertExpectations(t)
	})

	t.Run("rejects malformed device ID", func(t *testing.T) {
		body, err := json.Marshal(request.StartSessionRequest{
			DeviceID:        "not-a-uuid",
			CustomerName:    "Omar",
			DurationMinutes: 60,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/sessions", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("maps occupied device to 409", func(t *testing.T) {
		deviceID := uuid.New()
		body, err := json.Marshal(request.StartSessionRequest{
			DeviceID:        deviceID.String(),
			CustomerName:    "Omar",
			DurationMinutes: 60,
		})
		require.NoError(t, err)

		starter.On("Start", mock.Anything, mock.Anything).
			Return(nil, domain.NewConflictError("device", "device already has an open session")).Once()

		req := httptest.NewRequest(fiber.MethodPost, "/api/v1/sessions", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}
