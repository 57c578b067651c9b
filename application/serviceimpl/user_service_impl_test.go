package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskmanager-api/domain/dto"
	"taskmanager-api/domain/services"
)

func TestRegisterLoginResolve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.ID == 0 {
		t.Error("expected assigned user id")
	}
	if user.PasswordHash == "pw1" || user.PasswordHash == "" {
		t.Errorf("password stored as %q", user.PasswordHash)
	}

	token, loggedIn, err := f.users.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("Login() user id = %d, want %d", loggedIn.ID, user.ID)
	}

	resolved, err := f.users.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved.Username != "alice" {
		t.Errorf("Resolve() username = %q, want alice", resolved.Username)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.users.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := f.users.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "other"})
	if !errors.Is(err, services.ErrDuplicateUsername) {
		t.Fatalf("err = %v, want ErrDuplicateUsername", err)
	}

	// ตัวพิมพ์ต่างกันถือเป็นคนละ username
	if _, err := f.users.Register(ctx, &dto.RegisterRequest{Username: "Alice", Password: "pw1"}); err != nil {
		t.Fatalf("Register(Alice) error = %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.users.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"wrong password", dto.LoginRequest{Username: "alice", Password: "wrong"}},
		{"unknown user", dto.LoginRequest{Username: "nobody", Password: "pw1"}},
		{"case variant username", dto.LoginRequest{Username: "ALICE", Password: "pw1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, user, err := f.users.Login(ctx, &tt.req)
			if !errors.Is(err, services.ErrInvalidCredentials) {
				t.Fatalf("err = %v, want ErrInvalidCredentials", err)
			}
			if token != "" || user != nil {
				t.Errorf("expected no token or user on failure")
			}
		})
	}
}

func TestResolveRejectsBadTokens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.users.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	token, _, err := f.users.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	t.Run("garbage", func(t *testing.T) {
		_, err := f.users.Resolve(ctx, "garbage")
		if !errors.Is(err, services.ErrUnauthenticated) || !errors.Is(err, services.ErrInvalidToken) {
			t.Fatalf("err = %v, want unauthenticated invalid token", err)
		}
	})

	t.Run("unknown subject", func(t *testing.T) {
		ghost, err := f.tokens.Issue("ghost")
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}
		if _, err := f.users.Resolve(ctx, ghost); !errors.Is(err, services.ErrUnauthenticated) {
			t.Fatalf("err = %v, want ErrUnauthenticated", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		f.clock.Advance(31 * time.Minute)
		_, err := f.users.Resolve(ctx, token)
		if !errors.Is(err, services.ErrUnauthenticated) || !errors.Is(err, services.ErrExpiredToken) {
			t.Fatalf("err = %v, want unauthenticated expired token", err)
		}
	})
}
