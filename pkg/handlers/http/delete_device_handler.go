package http

import (
	appDevice "github.com/NeonArcade/PlayBill/pkg/app/device"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type deleteDeviceHandler struct {
	logger  *logrus.Logger
	deleter appDevice.Deleter
}

func NewDeleteDeviceHandler(logger *logrus.Logger, deleter appDevice.Deleter) Handler {
	return &deleteDeviceHandler{
		logger:  logger,
		deleter: deleter,
	}
}

func (h *deleteDeviceHandler) Handle(c *fiber.Ctx) error {
	deviceID, err := uuid.Parse(c.Params("device_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid device ID"})
	}

	if err := h.deleter.Delete(c.Context(), deviceID); err != nil {
		h.logger.WithError(err).Debug("failed to delete device")
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
