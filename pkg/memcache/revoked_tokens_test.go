package mem

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRevokedTokens_InMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewRevokedTokens()
	s.now = func() time.Time { return now }

	if err := s.Revoke(ctx, "jti-1", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if ok, _ := s.IsRevoked(ctx, "jti-1"); !ok {
		t.Fatalf("token should be revoked")
	}
	if ok, _ := s.IsRevoked(ctx, "jti-2"); ok {
		t.Fatalf("unknown token should not be revoked")
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := s.IsRevoked(ctx, "jti-1"); ok {
		t.Fatalf("revocation should lapse once the token has expired")
	}
}

func TestRevokedTokens_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	s := NewRedisRevokedTokens(client)

	if err := s.Revoke(ctx, "jti-1", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	ok, err := s.IsRevoked(ctx, "jti-1")
	if err != nil || !ok {
		t.Fatalf("expected revoked, got %v %v", ok, err)
	}

	mr.FastForward(2 * time.Minute)
	ok, err = s.IsRevoked(ctx, "jti-1")
	if err != nil || ok {
		t.Fatalf("expected expiry, got %v %v", ok, err)
	}
}
