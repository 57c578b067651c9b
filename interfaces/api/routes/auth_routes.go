package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager-api/interfaces/api/handlers"
)

func SetupAuthRoutes(router fiber.Router, h *handlers.Handlers) {
	router.Post("/register", h.UserHandler.Register)
	router.Post("/login", h.UserHandler.Login)
}
