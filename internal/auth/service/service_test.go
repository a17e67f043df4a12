package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/auth/session"
	"milestone-tracker/backend/internal/security"
)

func newAuthService(t *testing.T) *Service {
	t.Helper()
	hasher := security.NewHasher(4) // min cost keeps the test fast
	hash, err := hasher.Hash([]byte("gizli-parola"))
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	users := map[string]string{"sevgi": hash}
	registry := session.NewMemoryRegistry(time.Hour, 2)
	return NewService(users, hasher, registry)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	sess, err := svc.Login(ctx, "sevgi", "gizli-parola")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token == "" || sess.Username != "sevgi" {
		t.Fatalf("bad session: %+v", sess)
	}
	if _, err := svc.Resolve(ctx, sess.Token); err != nil {
		t.Fatalf("resolve: %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Login(context.Background(), "sevgi", "yanlış")
	if !errors.Is(err, apierr.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Login(context.Background(), "yabancı", "gizli-parola")
	if !errors.Is(err, apierr.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLogin_ThirdConcurrentSessionSucceeds(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	var tokens []string
	for i := 0; i < 3; i++ {
		sess, err := svc.Login(ctx, "sevgi", "gizli-parola")
		if err != nil {
			t.Fatalf("login %d: %v", i+1, err)
		}
		tokens = append(tokens, sess.Token)
	}
	if _, err := svc.Resolve(ctx, tokens[2]); err != nil {
		t.Fatalf("newest session must be live: %v", err)
	}
}

func TestLogoutThenResolve(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	sess, err := svc.Login(ctx, "sevgi", "gizli-parola")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	svc.Logout(ctx, sess.Token)
	if _, err := svc.Resolve(ctx, sess.Token); !errors.Is(err, apierr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized after logout, got %v", err)
	}
}
