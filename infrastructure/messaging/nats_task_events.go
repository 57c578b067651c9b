package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"taskmanager-api/domain/ports"
)

// Publisher is the subset of the NATS client the event adapter needs.
type Publisher interface {
	Publish(subject string, data []byte) error
	Close() error
}

// NATSTaskEventPublisher implements ports.TaskEventPublisherPort
// subject = <prefix>.<event> เช่น tasks.created
type NATSTaskEventPublisher struct {
	client Publisher
	prefix string
}

func NewNATSTaskEventPublisher(client Publisher, prefix string) ports.TaskEventPublisherPort {
	if prefix == "" {
		prefix = "tasks"
	}
	return &NATSTaskEventPublisher{client: client, prefix: prefix}
}

func (p *NATSTaskEventPublisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal task event: %w", err)
	}

	subject := p.prefix + "." + event.Event
	if err := p.client.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

func (p *NATSTaskEventPublisher) Close() error {
	return p.client.Close()
}
