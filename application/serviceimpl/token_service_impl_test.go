package serviceimpl

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskmanager-api/domain/services"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, time.Minute)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if subject != "alice" {
		t.Errorf("subject = %q, want alice", subject)
	}
}

func TestJWTServiceIssueRequiresSubject(t *testing.T) {
	if _, err := NewJWTService(testSecret, time.Minute).Issue(""); err == nil {
		t.Fatal("expected error for empty subject")
	}
}

func TestJWTServiceExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
	svc := NewJWTService(testSecret, 30*time.Minute).WithClock(clock.Now)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	clock.Advance(29 * time.Minute)
	if _, err := svc.Validate(token); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	clock.Advance(2 * time.Minute)
	if _, err := svc.Validate(token); !errors.Is(err, services.ErrExpiredToken) {
		t.Fatalf("err = %v, want ErrExpiredToken", err)
	}
}

func TestJWTServiceRejectsBadTokens(t *testing.T) {
	svc := NewJWTService(testSecret, time.Minute)
	good, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	otherKey, err := NewJWTService("another-secret", time.Minute).Issue("alice")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	parts := strings.Split(good, ".")
	forgedPayload, err := NewJWTService(testSecret, time.Minute).Issue("mallory")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	// payload ของ mallory + signature ของ alice
	tampered := parts[0] + "." + strings.Split(forgedPayload, ".")[1] + "." + parts[2]

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "alice",
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token without exp: %v", err)
	}

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token without sub: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"wrong secret", otherKey},
		{"tampered payload", tampered},
		{"alg none", noneToken},
		{"missing exp", noExpiry},
		{"missing subject", noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token)
			if !errors.Is(err, services.ErrInvalidToken) {
				t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
