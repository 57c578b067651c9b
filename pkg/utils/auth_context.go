package utils

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"taskmanager-api/domain/models"
)

// UserLocalsKey คือ key ใน fiber locals ที่เก็บ user ที่ resolve แล้ว
const UserLocalsKey = "user"

var ErrUserNotInContext = errors.New("user not found in context")

// ExtractTokenFromHeader รับเฉพาะรูปแบบ "Bearer <token>"
func ExtractTokenFromHeader(authHeader string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func SetUserInContext(c *fiber.Ctx, user *models.User) {
	c.Locals(UserLocalsKey, user)
}

func GetUserFromContext(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(UserLocalsKey).(*models.User)
	if !ok || user == nil {
		return nil, ErrUserNotInContext
	}
	return user, nil
}
