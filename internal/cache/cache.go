package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrMiss is returned by Get when the key is not cached. Callers fall back
// to the authoritative store; the cache is never a source of truth.
var ErrMiss = errors.New("cache miss")

// Provider is a key to opaque-blob store with explicit invalidation.
// Entries carry no TTL; consistency relies on writers invalidating the
// partitions they touch.
type Provider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Invalidate(ctx context.Context, key string) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

const ProvidersListPrefix = "providers-list"

// ProviderAppointmentsKey derives the cache key for one provider's day
// schedule. Month and day are unpadded.
func ProviderAppointmentsKey(providerID string, year int, month time.Month, day int) string {
	return fmt.Sprintf("provider-appointments:%s:%d-%d-%d", providerID, year, int(month), day)
}

// ProvidersListKey derives the cache key for the provider listing as seen
// by one user.
func ProvidersListKey(userID string) string {
	return ProvidersListPrefix + ":" + userID
}
