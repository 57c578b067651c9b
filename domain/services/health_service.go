package services

import "context"

type HealthService interface {
	Check(ctx context.Context) error
	Probe()
}
