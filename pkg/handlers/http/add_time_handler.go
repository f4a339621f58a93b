package http

import (
	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	"github.com/NeonArcade/PlayBill/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type addTimeHandler struct {
	logger    *logrus.Logger
	timeAdder appSession.TimeAdder
}

func NewAddTimeHandler(logger *logrus.Logger, timeAdder appSession.TimeAdder) Handler {
	return &addTimeHandler{
		logger:    logger,
		timeAdder: timeAdder,
	}
}

func (h *addTimeHandler) Handle(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	var req request.AddTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return errorResponse(c, err)
	}

	sess, err := h.timeAdder.AddTime(c.Context(), sessionID, req.AdditionalMinutes, req.AdditionalAmount)
	if err != nil {
		h.logger.WithError(err).Debug("failed to add time to session")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(sess)
}
