package http

import (
	appDevice "github.com/NeonArcade/PlayBill/pkg/app/device"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getDeviceHandler struct {
	logger *logrus.Logger
	finder appDevice.Finder
}

func NewGetDeviceHandler(logger *logrus.Logger, finder appDevice.Finder) Handler {
	return &getDeviceHandler{
		logger: logger,
		finder: finder,
	}
}

func (h *getDeviceHandler) Handle(c *fiber.Ctx) error {
	deviceID, err := uuid.Parse(c.Params("device_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid device ID"})
	}

	dev, err := h.finder.GetByID(c.Context(), deviceID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dev)
}
