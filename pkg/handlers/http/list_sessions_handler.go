package http

import (
	appSession "github.com/NeonArcade/PlayBill/pkg/app/session"
	domainSession "github.com/NeonArcade/PlayBill/pkg/domain/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type listSessionsHandler struct {
	logger *logrus.Logger
	finder appSession.Finder
}

// NewListSessionsHandler @Summary List sessions
// @Description Lists sessions with live timing, filterable by status, device and open-only
// @Tags Sessions
// @Produce json
// @Param status query string false "Filter by status"
// @Param device_id query string false "Filter by device"
// @Param open query bool false "Only non-terminal sessions"
// @Success 200 {array} session.View "Sessions"
// @Router /api/v1/sessions [get]
func NewListSessionsHandler(logger *logrus.Logger, finder appSession.Finder) Handler {
	return &listSessionsHandler{
		logger: logger,
		finder: finder,
	}
}

func (h *listSessionsHandler) Handle(c *fiber.Ctx) error {
	var filter domainSession.ListFilter

	if status := c.Query("status"); status != "" {
		s := domainSession.Status(status)
		filter.Status = &s
	}
	if deviceParam := c.Query("device_id"); deviceParam != "" {
		deviceID, err := uuid.Parse(deviceParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid device ID"})
		}
		filter.DeviceID = &deviceID
	}
	filter.OpenOnly = c.QueryBool("open")

	views, err := h.finder.List(c.Context(), filter)
	if err != nil {
		h.logger.WithError(err).Error("failed to list sessions")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(views)
}
