package messaging

import (
	"context"

	"taskmanager-api/domain/ports"
)

// NoopTaskEventPublisher ใช้เมื่อไม่ได้ตั้ง NATS_URL หรือเชื่อมต่อไม่ได้
type NoopTaskEventPublisher struct{}

func NewNoopTaskEventPublisher() ports.TaskEventPublisherPort {
	return NoopTaskEventPublisher{}
}

func (NoopTaskEventPublisher) PublishTaskEvent(context.Context, *ports.TaskEvent) error {
	return nil
}

func (NoopTaskEventPublisher) Close() error {
	return nil
}
