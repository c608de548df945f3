package kv

import (
	"context"
	"time"
)

// Store is a TTL-capable key-value backend. An expired key behaves exactly
// like a key that was never written. Implementations must be safe for
// concurrent use; concurrent writers to the same key race with
// last-write-wins semantics.
type Store interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns the value and true, or ("", false, nil) when the key is
	// absent or expired.
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}
