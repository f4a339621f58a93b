package http

import (
	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	"github.com/NeonArcade/PlayBill/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type startSessionHandler struct {
	logger  *logrus.Logger
	starter appSession.Starter
}

// NewStartSessionHandler @Summary Start a session
// @Description Seats a customer on a device and starts the billing clock
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body request.StartSessionRequest true "Session request body"
// @Success 201 {object} session.Session "Session started"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Device unavailable or occupied"
// @Router /api/v1/sessions [post]
func NewStartSessionHandler(logger *logrus.Logger, starter appSession.Starter) Handler {
	return &startSessionHandler{
		logger:  logger,
		starter: starter,
	}
}

func (h *startSessionHandler) Handle(c *fiber.Ctx) error {
	var req request.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return errorResponse(c, err)
	}

	deviceID, err := uuid.Parse(req.DeviceID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid device ID"})
	}

	input := appSession.StartInput{
		DeviceID:        deviceID,
		CustomerName:    req.CustomerName,
		DurationMinutes: req.DurationMinutes,
		Amount:          req.Amount,
	}
	if req.PackageID != "" {
		packageID, err := uuid.Parse(req.PackageID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid package ID"})
		}
		input.PackageID = &packageID
	}

	sess, err := h.starter.Start(c.Context(), input)
	if err != nil {
		h.logger.WithError(err).Debug("failed to start session")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(sess)
}
