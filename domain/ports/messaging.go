package ports

import (
	"context"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Task Event Publisher Port - แจ้งการเปลี่ยนแปลงของ task ออกไปภายนอก
// ═══════════════════════════════════════════════════════════════════════════════

const (
	TaskEventCreated = "created"
	TaskEventUpdated = "updated"
	TaskEventDeleted = "deleted"
)

// TaskEvent - Plain struct (ไม่มี NATS dependency)
type TaskEvent struct {
	Event      string    `json:"event"`
	TaskID     uint      `json:"task_id"`
	UserID     uint      `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// TaskEventPublisherPort - Interface สำหรับส่ง task events
type TaskEventPublisherPort interface {
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error
	Close() error
}
