package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskmanager-api/domain/services"
	"taskmanager-api/pkg/logger"
	"taskmanager-api/pkg/utils"
)

// Protected resolves the bearer token to a stored user and puts it in locals.
// Every route behind it sees an authenticated *models.User or never runs.
func Protected(resolver services.IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		user, err := resolver.Resolve(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrExpiredToken):
				logger.WarnContext(ctx, "Token expired", "path", c.Path())
				return utils.UnauthorizedResponse(c, "Token has expired")
			case errors.Is(err, services.ErrUnauthenticated):
				logger.WarnContext(ctx, "Token rejected", "path", c.Path(), "error", err)
				return utils.UnauthorizedResponse(c, "Invalid token")
			default:
				logger.ErrorContext(ctx, "Failed to resolve identity", "error", err)
				return utils.InternalServerErrorResponse(c)
			}
		}

		utils.SetUserInContext(c, user)
		return c.Next()
	}
}
