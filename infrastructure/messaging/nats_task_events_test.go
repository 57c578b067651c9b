package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"taskmanager-api/domain/ports"
)

type fakePublisher struct {
	subject string
	data    []byte
	err     error
	closed  bool
}

func (f *fakePublisher) Publish(subject string, data []byte) error {
	f.subject = subject
	f.data = data
	return f.err
}

func (f *fakePublisher) Close() error {
	f.closed = true
	return nil
}

func TestPublishTaskEvent(t *testing.T) {
	fake := &fakePublisher{}
	pub := NewNATSTaskEventPublisher(fake, "")

	occurred := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	err := pub.PublishTaskEvent(context.Background(), &ports.TaskEvent{
		Event:      ports.TaskEventCreated,
		TaskID:     7,
		UserID:     3,
		OccurredAt: occurred,
	})
	if err != nil {
		t.Fatalf("PublishTaskEvent() error = %v", err)
	}

	if fake.subject != "tasks.created" {
		t.Errorf("subject = %q, want tasks.created", fake.subject)
	}

	var got ports.TaskEvent
	if err := json.Unmarshal(fake.data, &got); err != nil {
		t.Fatalf("payload is not json: %v", err)
	}
	if got.TaskID != 7 || got.UserID != 3 || !got.OccurredAt.Equal(occurred) {
		t.Errorf("payload = %+v", got)
	}

	if err := pub.Close(); err != nil || !fake.closed {
		t.Errorf("Close() error = %v, closed = %v", err, fake.closed)
	}
}

func TestPublishTaskEventErrors(t *testing.T) {
	fake := &fakePublisher{err: errors.New("connection closed")}
	pub := NewNATSTaskEventPublisher(fake, "app.tasks")

	err := pub.PublishTaskEvent(context.Background(), &ports.TaskEvent{Event: ports.TaskEventDeleted})
	if err == nil {
		t.Fatal("expected publish error")
	}
	if fake.subject != "app.tasks.deleted" {
		t.Errorf("subject = %q, want app.tasks.deleted", fake.subject)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := pub.PublishTaskEvent(ctx, &ports.TaskEvent{Event: ports.TaskEventUpdated}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
