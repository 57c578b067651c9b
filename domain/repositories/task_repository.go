package repositories

import (
	"context"

	"taskmanager-api/domain/models"
)

// TaskRepository persists tasks. Every primitive takes the owner ID and
// filters on it in the query itself.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	ListByOwner(ctx context.Context, ownerID uint) ([]*models.Task, error)
	GetByID(ctx context.Context, id, ownerID uint) (*models.Task, error)
	Replace(ctx context.Context, id, ownerID uint, fields models.TaskFields) (*models.Task, error)
	Delete(ctx context.Context, id, ownerID uint) error
}
