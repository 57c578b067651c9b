package serviceimpl

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskmanager-api/domain/ports"
	"taskmanager-api/domain/services"
	"taskmanager-api/infrastructure/sqlite"
)

const testSecret = "test-signing-secret"

type recordedEvents struct {
	mu     sync.Mutex
	events []ports.TaskEvent
}

func (r *recordedEvents) PublishTaskEvent(_ context.Context, e *ports.TaskEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *e)
	return nil
}

func (r *recordedEvents) Close() error { return nil }

func (r *recordedEvents) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Event
	}
	return out
}

type fixture struct {
	users  services.UserService
	tasks  services.TaskService
	tokens *JWTService
	events *recordedEvents
	clock  *fakeClock
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "service.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	clock := &fakeClock{now: time.Now()}
	tokens := NewJWTService(testSecret, 30*time.Minute).WithClock(clock.Now)
	events := &recordedEvents{}

	return &fixture{
		users:  NewUserService(sqlite.NewUserRepository(store), NewBcryptHasher(bcrypt.MinCost), tokens),
		tasks:  NewTaskService(sqlite.NewTaskRepository(store), events),
		tokens: tokens,
		events: events,
		clock:  clock,
	}
}
