package http

import (
	appDevice "github.com/NeonArcade/PlayBill/pkg/app/device"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listDevicesHandler struct {
	logger *logrus.Logger
	finder appDevice.Finder
}

func NewListDevicesHandler(logger *logrus.Logger, finder appDevice.Finder) Handler {
	return &listDevicesHandler{
		logger: logger,
		finder: finder,
	}
}

func (h *listDevicesHandler) Handle(c *fiber.Ctx) error {
	devices, err := h.finder.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list devices")
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(devices)
}
