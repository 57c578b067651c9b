package handlers

import (
	"taskmanager-api/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService   services.UserService
	TaskService   services.TaskService
	HealthService services.HealthService
	AppName       string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	UserHandler   *UserHandler
	TaskHandler   *TaskHandler
	HealthHandler *HealthHandler

	// Identity ใช้สร้าง Protected middleware ใน routes
	Identity services.IdentityResolver
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		UserHandler:   NewUserHandler(services.UserService),
		TaskHandler:   NewTaskHandler(services.TaskService),
		HealthHandler: NewHealthHandler(services.HealthService, services.AppName),
		Identity:      services.UserService,
	}
}
