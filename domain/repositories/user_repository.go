package repositories

import (
	"context"

	"taskmanager-api/domain/models"
)

// UserRepository is the credential store. Username uniqueness is enforced by
// the storage layer itself, so Create is safe under concurrent registration.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
