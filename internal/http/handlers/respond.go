package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bookstore/internal/domain"
	applog "bookstore/internal/log"
)

// apiError maps the domain error taxonomy to an HTTP status with a JSON
// body. Store failures are logged and surfaced as a plain 500 so internals
// never leak, but are never conflated with an empty result.
func apiError(c *fiber.Ctx, action string, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		applog.Security(c, action+".invalid", map[string]any{"reason": ve.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "book not found"})
	default:
		applog.Error(c, action+".error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
