package http

import (
	appCatalog "github.com/NeonArcade/PlayBill/pkg/app/catalog"
	"github.com/NeonArcade/PlayBill/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createPackageHandler struct {
	logger  *logrus.Logger
	creator appCatalog.Creator
}

func NewCreatePackageHandler(logger *logrus.Logger, creator appCatalog.Creator) Handler {
	return &createPackageHandler{
		logger:  logger,
		creator: creator,
	}
}

func (h *createPackageHandler) Handle(c *fiber.Ctx) error {
	var req request.CreatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return errorResponse(c, err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	pkg, err := h.creator.Create(c.Context(), appCatalog.CreateInput{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          active,
	})
	if err != nil {
		h.logger.WithError(err).Debug("failed to create package")
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(pkg)
}
