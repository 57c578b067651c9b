package api

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager-api/interfaces/api/handlers"
	"taskmanager-api/interfaces/api/middleware"
	"taskmanager-api/interfaces/api/routes"
)

type AppConfig struct {
	Name         string
	AllowOrigins []string
}

// NewApp ประกอบ fiber app พร้อม middleware และ routes
func NewApp(cfg AppConfig, h *handlers.Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(),
		AppName:               cfg.Name,
		BodyLimit:             1 * 1024 * 1024,
		DisableStartupMessage: true,
	})

	// ลำดับสำคัญ: request id ต้องมาก่อน logger
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware(cfg.AllowOrigins))

	routes.SetupRoutes(app, h)

	return app
}
