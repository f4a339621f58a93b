package http

import (
	appCatalog "github.com/NeonArcade/PlayBill/pkg/app/catalog"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type deletePackageHandler struct {
	logger  *logrus.Logger
	deleter appCatalog.Deleter
}

func NewDeletePackageHandler(logger *logrus.Logger, deleter appCatalog.Deleter) Handler {
	return &deletePackageHandler{
		logger:  logger,
		deleter: deleter,
	}
}

func (h *deletePackageHandler) Handle(c *fiber.Ctx) error {
	packageID, err := uuid.Parse(c.Params("package_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid package ID"})
	}

	if err := h.deleter.Delete(c.Context(), packageID); err != nil {
		h.logger.WithError(err).Debug("failed to delete package")
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
