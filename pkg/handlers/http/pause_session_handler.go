package http

import (
	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/NeonArcade/PlayBill/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type pauseSessionHandler struct {
	logger *logrus.Logger
	pauser appSession.Pauser
}

func NewPauseSessionHandler(logger *logrus.Logger, pauser appSession.Pauser) Handler {
	return &pauseSessionHandler{
		logger: logger,
		pauser: pauser,
	}
}

func (h *pauseSessionHandler) Handle(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	var req request.PauseSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return errorResponse(c, err)
	}

	sess, err := h.pauser.Pause(c.Context(), sessionID, domainSession.PauseReason(req.Reason), req.Notes)
	if err != nil {
		h.logger.WithError(err).Debug("failed to pause session")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(sess)
}
