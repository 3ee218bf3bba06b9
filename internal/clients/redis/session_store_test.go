package redis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/yungbote/luminus-backend/internal/pkg/errors"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	userID := uuid.New()

	token, err := store.Issue(ctx, userID, time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	got, err := store.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != userID {
		t.Errorf("Resolve = %v, want %v", got, userID)
	}

	if err := store.Revoke(ctx, token); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, err := store.Resolve(ctx, token); err != apperrors.ErrUnauthorized {
		t.Errorf("revoked token resolved with err %v, want ErrUnauthorized", err)
	}
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	token, err := store.Issue(ctx, uuid.New(), -time.Second)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := store.Resolve(ctx, token); err != apperrors.ErrUnauthorized {
		t.Errorf("expired token resolved with err %v, want ErrUnauthorized", err)
	}

	if _, err := store.Resolve(ctx, "never-issued"); err != apperrors.ErrUnauthorized {
		t.Errorf("unknown token resolved with err %v, want ErrUnauthorized", err)
	}
}
