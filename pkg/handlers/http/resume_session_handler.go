package http

import (
	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type resumeSessionHandler struct {
	logger  *logrus.Logger
	resumer appSession.Resumer
}

func NewResumeSessionHandler(logger *logrus.Logger, resumer appSession.Resumer) Handler {
	return &resumeSessionHandler{
		logger:  logger,
		resumer: resumer,
	}
}

func (h *resumeSessionHandler) Handle(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	sess, err := h.resumer.Resume(c.Context(), sessionID)
	if err != nil {
		h.logger.WithError(err).Debug("failed to resume session")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(sess)
}
