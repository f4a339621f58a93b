package http

import (
	appCatalog "github.com/NeonArcade/PlayBill/pkg/app/catalog"
	"github.com/NeonArcade/PlayBill/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type updatePackageHandler struct {
	logger  *logrus.Logger
	updater appCatalog.Updater
}

func NewUpdatePackageHandler(logger *logrus.Logger, updater appCatalog.Updater) Handler {
	return &updatePackageHandler{
		logger:  logger,
		updater: updater,
	}
}

func (h *updatePackageHandler) Handle(c *fiber.Ctx) error {
	packageID, err := uuid.Parse(c.Params("package_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid package ID"})
	}

	var req request.UpdatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	pkg, err := h.updater.Update(c.Context(), packageID, appCatalog.UpdateInput{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          req.Active,
	})
	if err != nil {
		h.logger.WithError(err).Debug("failed to update package")
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(pkg)
}
