package http

import (
	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getSessionHandler struct {
	logger *logrus.Logger
	finder appSession.Finder
}

func NewGetSessionHandler(logger *logrus.Logger, finder appSession.Finder) Handler {
	return &getSessionHandler{
		logger: logger,
		finder: finder,
	}
}

func (h *getSessionHandler) Handle(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	view, err := h.finder.GetByID(c.Context(), sessionID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}
