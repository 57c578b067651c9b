package serviceimpl

import (
	"context"
	"time"

	"taskmanager-api/domain/repositories"
	"taskmanager-api/pkg/logger"
)

// HealthService ตรวจ database ให้ทั้ง /health และ scheduled probe
type HealthService struct {
	db      repositories.Pinger
	timeout time.Duration
}

func NewHealthService(db repositories.Pinger) *HealthService {
	return &HealthService{db: db, timeout: 3 * time.Second}
}

func (s *HealthService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.db.Ping(ctx)
}

// Probe ใช้เป็น scheduled job: log เฉพาะตอนผิดปกติ
func (s *HealthService) Probe() {
	start := time.Now()
	if err := s.Check(context.Background()); err != nil {
		logger.Error("Database health probe failed", "error", err, "latency", time.Since(start).String())
		return
	}
	logger.Debug("Database health probe ok", "latency", time.Since(start).String())
}
