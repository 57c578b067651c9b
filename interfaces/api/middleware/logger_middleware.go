package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"taskmanager-api/pkg/logger"
)

// LoggerMiddleware structured access log สำหรับทุก request
// ไม่ log body และ header Authorization
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// ให้ ErrorHandler เขียน response ก่อน status จะได้ถูก
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()

		logFunc := logger.InfoContext
		switch {
		case status >= 500:
			logFunc = logger.ErrorContext
		case status >= 400:
			logFunc = logger.WarnContext
		case c.Path() == "/health":
			logFunc = logger.DebugContext
		}

		logFunc(c.UserContext(), "Request completed",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.IP(),
			"bytes", len(c.Response().Body()),
		)

		return nil
	}
}
