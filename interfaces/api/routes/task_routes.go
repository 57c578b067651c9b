package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager-api/interfaces/api/handlers"
	"taskmanager-api/interfaces/api/middleware"
)

func SetupTaskRoutes(router fiber.Router, h *handlers.Handlers) {
	tasks := router.Group("/tasks", middleware.Protected(h.Identity))
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
