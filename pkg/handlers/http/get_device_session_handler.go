package http

import (
	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getDeviceSessionHandler struct {
	logger *logrus.Logger
	finder appSession.Finder
}

// NewGetDeviceSessionHandler @Summary Get a device's open session
// @Description Returns the active, paused or pending-payment session occupying a device
// @Tags Devices
// @Produce json
// @Param device_id path string true "Device ID"
// @Success 200 {object} session.View "Open session"
// @Failure 404 {object} map[string]interface{} "Device has no open session"
// @Router /api/v1/devices/{device_id}/session [get]
func NewGetDeviceSessionHandler(logger *logrus.Logger, finder appSession.Finder) Handler {
	return &getDeviceSessionHandler{
		logger: logger,
		finder: finder,
	}
}

func (h *getDeviceSessionHandler) Handle(c *fiber.Ctx) error {
	deviceID, err := uuid.Parse(c.Params("device_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid device ID"})
	}

	view, err := h.finder.GetOpenByDevice(c.Context(), deviceID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}
