package dto

import (
	"fmt"
	"time"

	"taskmanager-api/domain/models"
)

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	resp := &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		UserID:      task.UserID,
	}
	if task.DueDate != nil {
		d := task.DueDate.Format(DateLayout)
		resp.DueDate = &d
	}
	return resp
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}

// ToFields แปลง request เป็น field ของ task; status ว่างจะถูกเติมค่า default ที่ service
func (r *TaskRequest) ToFields() (models.TaskFields, error) {
	fields := models.TaskFields{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
	}

	if r.DueDate != "" {
		due, err := time.Parse(DateLayout, r.DueDate)
		if err != nil {
			return models.TaskFields{}, fmt.Errorf("invalid due_date %q: %w", r.DueDate, err)
		}
		fields.DueDate = &due
	}

	return fields, nil
}
