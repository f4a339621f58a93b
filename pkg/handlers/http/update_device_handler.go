package http

import (
	appDevice "github.com/NeonArcade/PlayBill/pkg/app/device"
	domainDevice "github.com/NeonArcade/PlayBill/pkg/domain/device"
	"github.com/NeonArcade/PlayBill/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type updateDeviceHandler struct {
	logger  *logrus.Logger
	updater appDevice.Updater
}

func NewUpdateDeviceHandler(logger *logrus.Logger, updater appDevice.Updater) Handler {
	return &updateDeviceHandler{
		logger:  logger,
		updater: updater,
	}
}

func (h *updateDeviceHandler) Handle(c *fiber.Ctx) error {
	deviceID, err := uuid.Parse(c.Params("device_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid device ID"})
	}

	var req request.UpdateDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	input := appDevice.UpdateInput{
		Name:     req.Name,
		Location: req.Location,
	}
	if req.Kind != nil {
		kind := domainDevice.Kind(*req.Kind)
		input.Kind = &kind
	}
	if req.Status != nil {
		status := domainDevice.Status(*req.Status)
		input.Status = &status
	}

	dev, err := h.updater.Update(c.Context(), deviceID, input)
	if err != nil {
		h.logger.WithError(err).Debug("failed to update device")
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dev)
}
