package http

import (
	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type stopSessionHandler struct {
	logger  *logrus.Logger
	stopper appSession.Stopper
}

func NewStopSessionHandler(logger *logrus.Logger, stopper appSession.Stopper) Handler {
	return &stopSessionHandler{
		logger:  logger,
		stopper: stopper,
	}
}

func (h *stopSessionHandler) Handle(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	sess, err := h.stopper.Stop(c.Context(), sessionID)
	if err != nil {
		h.logger.WithError(err).Debug("failed to stop session")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(sess)
}
