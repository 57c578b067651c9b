package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager-api/interfaces/api/handlers"
)

// SetupRoutes ลงทะเบียนทุก route ที่ root ไม่มี version prefix
func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	SetupHealthRoutes(app, h)
	SetupAuthRoutes(app, h)
	SetupTaskRoutes(app, h)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}
