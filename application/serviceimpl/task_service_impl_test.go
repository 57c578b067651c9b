package serviceimpl

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"taskmanager-api/domain/dto"
	"taskmanager-api/domain/models"
	"taskmanager-api/domain/ports"
	"taskmanager-api/domain/services"
)

func strPtr(s string) *string { return &s }

func registerUser(t *testing.T, f *fixture, username string) *models.User {
	t.Helper()
	user, err := f.users.Register(context.Background(), &dto.RegisterRequest{Username: username, Password: "pw"})
	if err != nil {
		t.Fatalf("Register(%s) error = %v", username, err)
	}
	return user
}

func TestCreateTaskDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := registerUser(t, f, "alice")

	task, err := f.tasks.CreateTask(ctx, alice, &dto.TaskRequest{Title: "  Buy milk  "})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	if task.Title != "  Buy milk  " {
		t.Errorf("Title = %q, want stored as sent", task.Title)
	}
	if task.Status != models.TaskStatusPending {
		t.Errorf("Status = %q, want pending", task.Status)
	}
	if task.Description != nil || task.DueDate != nil {
		t.Errorf("optional fields should be absent: %+v", task)
	}
	if task.UserID != alice.ID {
		t.Errorf("UserID = %d, want %d", task.UserID, alice.ID)
	}
}

func TestCreateTaskRejectsInvalidInput(t *testing.T) {
	f := newFixture(t)
	alice := registerUser(t, f, "alice")

	tests := []struct {
		name string
		req  dto.TaskRequest
	}{
		{"blank title", dto.TaskRequest{Title: "   "}},
		{"bad date", dto.TaskRequest{Title: "x", DueDate: "2026-13-45"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.tasks.CreateTask(context.Background(), alice, &tt.req)
			if !errors.Is(err, services.ErrInvalidTask) {
				t.Fatalf("err = %v, want ErrInvalidTask", err)
			}
		})
	}
}

func TestTaskOwnershipIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := registerUser(t, f, "alice")
	bob := registerUser(t, f, "bob")

	task, err := f.tasks.CreateTask(ctx, alice, &dto.TaskRequest{Title: "secret"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	bobTasks, err := f.tasks.ListTasks(ctx, bob)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(bobTasks) != 0 {
		t.Fatalf("bob sees %d tasks, want 0", len(bobTasks))
	}

	missing := task.ID + 1000

	tests := []struct {
		name string
		run  func(id uint) error
	}{
		{"get", func(id uint) error { _, err := f.tasks.GetTask(ctx, bob, id); return err }},
		{"update", func(id uint) error {
			_, err := f.tasks.UpdateTask(ctx, bob, id, &dto.TaskRequest{Title: "hijacked"})
			return err
		}},
		{"delete", func(id uint) error { return f.tasks.DeleteTask(ctx, bob, id) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foreignErr := tt.run(task.ID)
			missingErr := tt.run(missing)
			if !errors.Is(foreignErr, services.ErrTaskNotFound) {
				t.Errorf("foreign err = %v, want ErrTaskNotFound", foreignErr)
			}
			if foreignErr != missingErr {
				t.Errorf("foreign (%v) and missing (%v) should be indistinguishable", foreignErr, missingErr)
			}
		})
	}

	still, err := f.tasks.GetTask(ctx, alice, task.ID)
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if still.Title != "secret" {
		t.Errorf("Title = %q, foreign update leaked through", still.Title)
	}
}

func TestUpdateTaskReplacesAllFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := registerUser(t, f, "alice")

	task, err := f.tasks.CreateTask(ctx, alice, &dto.TaskRequest{
		Title:       "Buy milk",
		Description: strPtr("2 liters"),
		Status:      models.TaskStatusInProgress,
		DueDate:     "2026-12-01",
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	updated, err := f.tasks.UpdateTask(ctx, alice, task.ID, &dto.TaskRequest{Title: "Buy oat milk"})
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}

	if updated.ID != task.ID || updated.Title != "Buy oat milk" {
		t.Errorf("updated = %+v", updated)
	}
	if updated.Status != models.TaskStatusPending {
		t.Errorf("Status = %q, want pending after replace", updated.Status)
	}
	if updated.Description != nil || updated.DueDate != nil {
		t.Errorf("omitted optional fields should be cleared: %+v", updated)
	}
}

func TestTaskEventsPublished(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := registerUser(t, f, "alice")

	task, err := f.tasks.CreateTask(ctx, alice, &dto.TaskRequest{Title: "a"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if _, err := f.tasks.UpdateTask(ctx, alice, task.ID, &dto.TaskRequest{Title: "b"}); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	if err := f.tasks.DeleteTask(ctx, alice, task.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	// ลบซ้ำต้องไม่ส่ง event
	if err := f.tasks.DeleteTask(ctx, alice, task.ID); !errors.Is(err, services.ErrTaskNotFound) {
		t.Fatalf("second delete err = %v, want ErrTaskNotFound", err)
	}

	want := []string{ports.TaskEventCreated, ports.TaskEventUpdated, ports.TaskEventDeleted}
	if got := f.events.names(); !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestTaskServiceWithoutPublisher(t *testing.T) {
	f := newFixture(t)
	alice := registerUser(t, f, "alice")

	svc := f.tasks.(*TaskServiceImpl)
	svc.events = nil

	if _, err := svc.CreateTask(context.Background(), alice, &dto.TaskRequest{Title: "a"}); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
}
