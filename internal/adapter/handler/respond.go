package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// fail maps every failure to the flat error body the API uses everywhere:
// HTTP 500 with {success:false, message}. There are no distinct 404/400
// codes on this surface.
func fail(c *fiber.Ctx, err error) error {
	slog.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}
