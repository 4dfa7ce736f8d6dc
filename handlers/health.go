package handlers

import (
	"github.com/feetrack/api/database"
	"github.com/gofiber/fiber/v2"
)

// HandleCheckHealth reports liveness of the API and its database.
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	if err := store.HealthCheck(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
