package http

import (
	appCatalog "github.com/NeonArcade/PlayBill/pkg/app/catalog"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listPackagesHandler struct {
	logger *logrus.Logger
	finder appCatalog.Finder
}

func NewListPackagesHandler(logger *logrus.Logger, finder appCatalog.Finder) Handler {
	return &listPackagesHandler{
		logger: logger,
		finder: finder,
	}
}

func (h *listPackagesHandler) Handle(c *fiber.Ctx) error {
	packages, err := h.finder.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list packages")
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(packages)
}
