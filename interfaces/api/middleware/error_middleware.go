package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskmanager-api/pkg/logger"
	"taskmanager-api/pkg/utils"
)

// ErrorHandler แปลง error ที่หลุดจาก handler เป็น error envelope
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
			switch code {
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusUnauthorized:
				errCode = utils.ErrCodeUnauthorized
			case fiber.StatusForbidden:
				errCode = utils.ErrCodeForbidden
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusMethodNotAllowed:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusConflict:
				errCode = utils.ErrCodeConflict
			}
		}

		if code >= fiber.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "Unhandled error", "path", c.Path(), "error", err)
			// ไม่ส่งรายละเอียดภายในออกไป
			message = "Internal server error"
		}

		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}
