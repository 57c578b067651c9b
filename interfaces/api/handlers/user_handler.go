package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskmanager-api/domain/dto"
	"taskmanager-api/domain/services"
	"taskmanager-api/pkg/logger"
	"taskmanager-api/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	logger.InfoContext(ctx, "Registration attempt", "username", req.Username)

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.ErrCodeUsernameExists, "Username already exists", nil)
		}
		logger.ErrorContext(ctx, "Registration failed", "username", req.Username, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "username", user.Username)

	return utils.MessageResponse(c, "User registered successfully")
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errs)
		return utils.ValidationErrorResponse(c, errs)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// ห้ามบอกว่า username ไม่มี หรือ password ผิด
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid username or password", nil)
		}
		logger.ErrorContext(ctx, "Login failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Login successful", "user_id", user.ID)

	return utils.SuccessResponse(c, &dto.TokenResponse{
		AccessToken: token,
		TokenType:   dto.TokenTypeBearer,
	})
}
