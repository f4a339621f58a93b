package http

import (
	appDevice "github.com/NeonArcade/PlayBill/pkg/app/device"
	domainDevice "github.com/NeonArcade/PlayBill/pkg/domain/device"
	"github.com/NeonArcade/PlayBill/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createDeviceHandler struct {
	logger  *logrus.Logger
	creator appDevice.Creator
}

func NewCreateDeviceHandler(logger *logrus.Logger, creator appDevice.Creator) Handler {
	return &createDeviceHandler{
		logger:  logger,
		creator: creator,
	}
}

func (h *createDeviceHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return errorResponse(c, err)
	}

	dev, err := h.creator.Create(c.Context(), appDevice.CreateInput{
		Name:     req.Name,
		Kind:     domainDevice.Kind(req.Kind),
		Status:   domainDevice.Status(req.Status),
		Location: req.Location,
	})
	if err != nil {
		h.logger.WithError(err).Debug("failed to create device")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dev)
}
