package services

import (
	"context"

	"taskmanager-api/domain/dto"
	"taskmanager-api/domain/models"
)

// TaskService ทุก method ต้องได้ user ที่ resolve แล้วเป็น owner
type TaskService interface {
	CreateTask(ctx context.Context, owner *models.User, req *dto.TaskRequest) (*models.Task, error)
	ListTasks(ctx context.Context, owner *models.User) ([]*models.Task, error)
	GetTask(ctx context.Context, owner *models.User, taskID uint) (*models.Task, error)
	UpdateTask(ctx context.Context, owner *models.User, taskID uint, req *dto.TaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, owner *models.User, taskID uint) error
}
