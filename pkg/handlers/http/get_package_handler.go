package http

import (
	appCatalog "github.com/NeonArcade/PlayBill/pkg/app/catalog"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type getPackageHandler struct {
	logger *logrus.Logger
	finder appCatalog.Finder
}

func NewGetPackageHandler(logger *logrus.Logger, finder appCatalog.Finder) Handler {
	return &getPackageHandler{
		logger: logger,
		finder: finder,
	}
}

func (h *getPackageHandler) Handle(c *fiber.Ctx) error {
	packageID, err := uuid.Parse(c.Params("package_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid package ID"})
	}

	pkg, err := h.finder.GetByID(c.Context(), packageID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(pkg)
}
