package session

import (
	"context"
	"time"

	"movecar-service/internal/kv"
)

// Store namespaces every record by session key on top of a TTL key-value
// backend. Two distinct session keys never observe each other's records.
type Store struct {
	kv kv.Store
}

func NewStore(backend kv.Store) *Store {
	return &Store{kv: backend}
}

// Put writes a field record, replacing any prior value, expiring ttl from now.
func (s *Store) Put(ctx context.Context, sessionKey string, field Field, value string, ttl time.Duration) error {
	return s.kv.Set(ctx, field.Key(sessionKey), value, ttl)
}

// Get reads a field record. ok is false when the record was never written or
// has expired.
func (s *Store) Get(ctx context.Context, sessionKey string, field Field) (value string, ok bool, err error) {
	return s.kv.Get(ctx, field.Key(sessionKey))
}

// Delete removes a field record immediately, independent of its TTL.
func (s *Store) Delete(ctx context.Context, sessionKey string, field Field) error {
	return s.kv.Delete(ctx, field.Key(sessionKey))
}
