package http

import (
	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	"github.com/NeonArcade/PlayBill/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type confirmPaymentHandler struct {
	logger    *logrus.Logger
	confirmer appSession.PaymentConfirmer
}

func NewConfirmPaymentHandler(logger *logrus.Logger, confirmer appSession.PaymentConfirmer) Handler {
	return &confirmPaymentHandler{
		logger:    logger,
		confirmer: confirmer,
	}
}

func (h *confirmPaymentHandler) Handle(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	// Body is optional, payment can be confirmed without notes.
	var req request.ConfirmPaymentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
		}
	}

	sess, err := h.confirmer.Confirm(c.Context(), sessionID, req.Notes)
	if err != nil {
		h.logger.WithError(err).Debug("failed to confirm payment")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(sess)
}
