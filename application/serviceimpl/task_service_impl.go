package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskmanager-api/domain/dto"
	"taskmanager-api/domain/models"
	"taskmanager-api/domain/ports"
	"taskmanager-api/domain/repositories"
	"taskmanager-api/domain/services"
	"taskmanager-api/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	events   ports.TaskEventPublisherPort
}

func NewTaskService(taskRepo repositories.TaskRepository, events ports.TaskEventPublisherPort) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		events:   events,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, owner *models.User, req *dto.TaskRequest) (*models.Task, error) {
	fields, err := taskFields(req)
	if err != nil {
		return nil, err
	}

	task := &models.Task{UserID: owner.ID}
	task.Apply(fields)

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", owner.ID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created successfully", "task_id", task.ID, "user_id", owner.ID)
	s.publish(ctx, ports.TaskEventCreated, task.ID, owner.ID)

	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, owner *models.User) ([]*models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, owner.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", owner.ID, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, owner *models.User, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID, owner.ID)
	if err != nil {
		return nil, s.notFoundOr(ctx, err, "get", taskID, owner.ID)
	}
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, owner *models.User, taskID uint, req *dto.TaskRequest) (*models.Task, error) {
	fields, err := taskFields(req)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.Replace(ctx, taskID, owner.ID, fields)
	if err != nil {
		return nil, s.notFoundOr(ctx, err, "update", taskID, owner.ID)
	}

	logger.InfoContext(ctx, "Task updated successfully", "task_id", taskID, "user_id", owner.ID)
	s.publish(ctx, ports.TaskEventUpdated, task.ID, owner.ID)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, owner *models.User, taskID uint) error {
	if err := s.taskRepo.Delete(ctx, taskID, owner.ID); err != nil {
		return s.notFoundOr(ctx, err, "delete", taskID, owner.ID)
	}

	logger.InfoContext(ctx, "Task deleted successfully", "task_id", taskID, "user_id", owner.ID)
	s.publish(ctx, ports.TaskEventDeleted, taskID, owner.ID)

	return nil
}

// taskFields แปลง request และเติม status default ที่นี่ที่เดียว
func taskFields(req *dto.TaskRequest) (models.TaskFields, error) {
	fields, err := req.ToFields()
	if err != nil {
		return models.TaskFields{}, fmt.Errorf("%w: %v", services.ErrInvalidTask, err)
	}
	// เก็บ title ตามที่ส่งมา แต่ห้ามเป็นช่องว่างล้วน
	if strings.TrimSpace(fields.Title) == "" {
		return models.TaskFields{}, fmt.Errorf("%w: title is required", services.ErrInvalidTask)
	}
	if fields.Status == "" {
		fields.Status = models.TaskStatusPending
	}
	return fields, nil
}

func (s *TaskServiceImpl) notFoundOr(ctx context.Context, err error, op string, taskID, ownerID uint) error {
	if errors.Is(err, repositories.ErrNotFound) {
		logger.WarnContext(ctx, "Task not found", "op", op, "task_id", taskID, "user_id", ownerID)
		return services.ErrTaskNotFound
	}
	logger.ErrorContext(ctx, "Task operation failed", "op", op, "task_id", taskID, "user_id", ownerID, "error", err)
	return err
}

// publish ส่ง event แบบ best-effort: ส่งไม่ได้ก็แค่ log
func (s *TaskServiceImpl) publish(ctx context.Context, event string, taskID, userID uint) {
	if s.events == nil {
		return
	}
	err := s.events.PublishTaskEvent(ctx, &ports.TaskEvent{
		Event:      event,
		TaskID:     taskID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		logger.WarnContext(ctx, "Failed to publish task event", "event", event, "task_id", taskID, "error", err)
	}
}
