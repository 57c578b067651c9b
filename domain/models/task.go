package models

import "time"

const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

type Task struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"size:200;not null"`
	Description *string    `gorm:"size:1000"`
	Status      string     `gorm:"size:20;not null;default:'pending'"`
	DueDate     *time.Time `gorm:"type:date"`
	UserID      uint       `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// TaskFields คือ field ที่ผู้ใช้แก้ได้ ใช้ทั้งตอนสร้างและตอน replace
type TaskFields struct {
	Title       string
	Description *string
	Status      string
	DueDate     *time.Time
}

// Apply เขียนทับ field ที่แก้ได้ทั้งหมด
func (t *Task) Apply(f TaskFields) {
	t.Title = f.Title
	t.Description = f.Description
	t.Status = f.Status
	t.DueDate = f.DueDate
}
