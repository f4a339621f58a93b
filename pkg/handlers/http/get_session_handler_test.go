package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	"github.com/NeonArcade/PlayBill/pkg/domain"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSessionHandler_Handle(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	finder := new(finderMock)
	handler := NewGetSessionHandler(logger, finder)

	app := fiber.New()
	app.Get("/api/v1/sessions/:session_id", handler.Handle)

	t.Run("returns the session with timing fields", func(t *testing.T) {
		sessionID := uuid.New()
		view := &appSession.View{
			Session: &domainSession.Session{
				ID:              sessionID,
				DeviceID:        uuid.New(),
				CustomerName:    "Omar",
				DurationMinutes: 60,
				StartTime:       time.Now().Add(-15 * time.Minute),
				Status:          domainSession.StatusActive,
			},
			ElapsedMinutes:   15,
			RemainingMinutes: 45,
		}
		finder.On("GetByID", mock.Anything, sessionID).Return(view, nil).Once()

		req := httptest.NewRequest(fiber.MethodGet, "/api/v1/sessions/"+sessionID.String(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Equal(t, float64(45), decoded["remaining_minutes"])
	})

	t.Run("unknown session returns 404", func(t *testing.T) {
		sessionID := uuid.New()
		finder.On("GetByID", mock.Anything, sessionID).
			Return(nil, domain.NewNotFoundError("session", sessionID.String())).Once()

		req := httptest.NewRequest(fiber.MethodGet, "/api/v1/sessions/"+sessionID.String(), nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed ID returns 400", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/api/v1/sessions/not-a-uuid", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
