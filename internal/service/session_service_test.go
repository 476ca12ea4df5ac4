package service

import (
	"errors"
	"testing"
	"time"

	"github.com/minishop-next/internal/config"
)

func TestSessionIssueAndParse(t *testing.T) {
	svc := NewSessionService(config.SessionConfig{SecretKey: "test-secret", TTLHours: 1})
	sessionID, token, expiresAt, err := svc.Issue()
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if time.Until(expiresAt) > time.Hour || time.Until(expiresAt) < 59*time.Minute {
		t.Fatalf("unexpected expiry %v", expiresAt)
	}
	parsed, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed != sessionID {
		t.Fatalf("session id want %s got %s", sessionID, parsed)
	}
}

func TestSessionParseRejectsForeignToken(t *testing.T) {
	issuer := NewSessionService(config.SessionConfig{SecretKey: "secret-a"})
	verifier := NewSessionService(config.SessionConfig{SecretKey: "secret-b"})
	_, token, _, err := issuer.Issue()
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.Parse(token); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("want ErrSessionInvalid got %v", err)
	}
	if _, err := verifier.Parse(""); !errors.Is(err, ErrSessionRequired) {
		t.Fatalf("want ErrSessionRequired got %v", err)
	}
	if _, err := verifier.Parse("garbage"); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("want ErrSessionInvalid got %v", err)
	}
	token, _, err = issuer.Sign("not-a-uuid")
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := issuer.Parse(token); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("non uuid subject want ErrSessionInvalid got %v", err)
	}
}
