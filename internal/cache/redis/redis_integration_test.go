package redis

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"barberly/backend/internal/cache"
)

// Skipped unless BARBERLY_TEST_REDIS_ADDR is set.
func TestRedisIntegration_Contract(t *testing.T) {
	addr := strings.TrimSpace(os.Getenv("BARBERLY_TEST_REDIS_ADDR"))
	if addr == "" {
		t.Skip("BARBERLY_TEST_REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := Dial(ctx, addr)
	if err != nil {
		t.Fatalf("Dial error: %v", err)
	}
	defer func() { _ = c.Close() }()

	prefix := "barberly-test-" + time.Now().UTC().Format("20060102150405.000000000")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = c.InvalidatePrefix(ctx, prefix)
	})

	keyA := prefix + ":a"
	keyB := prefix + ":b"

	if _, err := c.Get(ctx, keyA); !errors.Is(err, cache.ErrMiss) {
		t.Fatalf("err = %v, want cache.ErrMiss", err)
	}

	if err := c.Set(ctx, keyA, []byte(`["x"]`)); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, err := c.Get(ctx, keyA)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(got) != `["x"]` {
		t.Fatalf("Get = %q", got)
	}

	if err := c.Invalidate(ctx, keyA); err != nil {
		t.Fatalf("Invalidate error: %v", err)
	}
	if _, err := c.Get(ctx, keyA); !errors.Is(err, cache.ErrMiss) {
		t.Fatalf("err after invalidate = %v, want cache.ErrMiss", err)
	}

	if err := c.Set(ctx, keyA, []byte("1")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := c.Set(ctx, keyB, []byte("2")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := c.InvalidatePrefix(ctx, prefix); err != nil {
		t.Fatalf("InvalidatePrefix error: %v", err)
	}
	for _, key := range []string{keyA, keyB} {
		if _, err := c.Get(ctx, key); !errors.Is(err, cache.ErrMiss) {
			t.Fatalf("key %s survived prefix invalidation: err = %v", key, err)
		}
	}
}
