package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"taskmanager-api/domain/dto"
	"taskmanager-api/domain/models"
	"taskmanager-api/domain/repositories"
	"taskmanager-api/domain/services"
	"taskmanager-api/pkg/logger"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	hasher   services.PasswordHasher
	tokens   services.TokenService

	// dummyHash ใช้ตอน username ไม่มีในระบบ ให้เวลาตอบเท่ากับกรณี password ผิด
	dummyOnce sync.Once
	dummyHash string
}

func NewUserService(userRepo repositories.UserRepository, hasher services.PasswordHasher, tokens services.TokenService) services.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
	}

	// ไม่ต้องเช็คซ้ำก่อน insert: unique index เป็นตัวตัดสิน
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			logger.WarnContext(ctx, "Username already exists", "username", req.Username)
			return nil, services.ErrDuplicateUsername
		}
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User created successfully", "user_id", user.ID, "username", user.Username)

	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.ErrorContext(ctx, "Failed to load user for login", "error", err)
			return "", nil, err
		}
		s.hasher.Verify(req.Password, s.fallbackHash())
		logger.WarnContext(ctx, "Login failed - username not found", "username", req.Username)
		return "", nil, services.ErrInvalidCredentials
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", nil, services.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in successfully", "user_id", user.ID, "username", user.Username)

	return token, user, nil
}

// Resolve validates the bearer token and loads its subject. A subject that no
// longer exists is rejected instead of returning a stale identity.
func (s *UserServiceImpl) Resolve(ctx context.Context, token string) (*models.User, error) {
	username, err := s.tokens.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", services.ErrUnauthenticated, err)
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Token subject no longer exists", "username", username)
			return nil, services.ErrUnauthenticated
		}
		logger.ErrorContext(ctx, "Failed to load token subject", "error", err)
		return nil, err
	}

	return user, nil
}

func (s *UserServiceImpl) fallbackHash() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("not-a-real-password")
		if err != nil {
			logger.Error("Failed to prepare fallback hash", "error", err)
			return
		}
		s.dummyHash = h
	})
	return s.dummyHash
}
