package services

import (
	"context"

	"taskmanager-api/domain/dto"
	"taskmanager-api/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	IdentityResolver
}

// IdentityResolver is the single authentication gate for task operations.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}
