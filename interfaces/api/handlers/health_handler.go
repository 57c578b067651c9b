package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"taskmanager-api/domain/services"
	"taskmanager-api/pkg/logger"
	"taskmanager-api/pkg/utils"
)

type HealthHandler struct {
	healthService services.HealthService
	appName       string
	startedAt     time.Time
}

func NewHealthHandler(healthService services.HealthService, appName string) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
		appName:       appName,
		startedAt:     time.Now(),
	}
}

// Health ตอบ 503 เมื่อ database ping ไม่ผ่าน
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.healthService.Check(ctx); err != nil {
		logger.ErrorContext(ctx, "Health check failed", "error", err)
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, utils.ErrCodeUnavailable, "Database unavailable", nil)
	}

	return utils.SuccessResponse(c, fiber.Map{
		"status":   "ok",
		"service":  h.appName,
		"database": "ok",
		"uptime":   time.Since(h.startedAt).Round(time.Second).String(),
	})
}
