package http

import (
	"github.com/NeonArcade/PlayBill/pkg/domain"
	"github.com/gofiber/fiber/v2"
)

const ErrInvalidJsonPayload = "invalid JSON payload"

// toStatusCode maps domain errors onto HTTP statuses. Anything the domain
// does not classify is a 500.
func toStatusCode(err error) int {
	switch {
	case domain.IsValidationError(err):
		return fiber.StatusBadRequest
	case domain.IsNotFoundError(err):
		return fiber.StatusNotFound
	case domain.IsConflictError(err), domain.IsInvalidStateError(err):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := toStatusCode(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
