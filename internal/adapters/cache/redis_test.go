package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/poyrazK/zonesync/internal/core/domain"
)

func TestRedisCache(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to run miniredis: %v", err)
	}
	defer mr.Close()

	c := NewRedisCache(mr.Addr(), "", 0)
	ctx := context.Background()

	target := domain.Target{Zone: "example.com", Server: "ns1.example.com"}
	transcript := "www.example.com.\t300\tIN\tA\t10.0.0.1\n"

	c.Set(ctx, target, transcript, 10*time.Second)

	got, found := c.Get(ctx, target)
	if !found {
		t.Fatal("Expected transcript to be cached")
	}
	if got != transcript {
		t.Errorf("Expected %q, got %q", transcript, got)
	}

	// A target without a server keys separately.
	_, found = c.Get(ctx, domain.Target{Zone: "example.com"})
	if found {
		t.Error("Expected a different key for the default-resolver target")
	}

	// Expiry honors the TTL.
	mr.FastForward(11 * time.Second)
	if _, found := c.Get(ctx, target); found {
		t.Error("Expected transcript to expire with its TTL")
	}
}

func TestRedisCache_Ping(t *testing.T) {
	mr, _ := miniredis.Run()
	defer mr.Close()
	c := NewRedisCache(mr.Addr(), "", 0)
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
