package session

import (
	"context"
	"time"
)

// DefaultCooldown is the minimum interval between notification sends for one
// session.
const DefaultCooldown = 60 * time.Second

// RateLimiter enforces the per-session cooldown by checking for the lock
// record. It only checks; the caller writes the lock together with the rest
// of the notify cycle's records. Two concurrent callers can both pass the
// check before either writes the lock — an accepted race, since the cooldown
// damps abuse rather than providing mutual exclusion.
type RateLimiter struct {
	store *Store
}

func NewRateLimiter(store *Store) *RateLimiter {
	return &RateLimiter{store: store}
}

// Allow reports whether a notify may proceed for this session.
func (rl *RateLimiter) Allow(ctx context.Context, sessionKey string) (bool, error) {
	_, locked, err := rl.store.Get(ctx, sessionKey, FieldLock)
	if err != nil {
		return false, err
	}
	return !locked, nil
}
