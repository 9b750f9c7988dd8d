package auth

import (
	"context"
	"sync"
	"time"
)

// Blocklist is the set of revoked token ids (jti).
// The service only reads it; entries are added by operators or other services.
type Blocklist interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
	Contains(ctx context.Context, jti string) (bool, error)
	Clear(ctx context.Context) error
}

// MemoryBlocklist is a process-local Blocklist. It starts empty.
type MemoryBlocklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryBlocklist() *MemoryBlocklist {
	return &MemoryBlocklist{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Add revokes jti. A non-positive ttl keeps the entry until Clear.
func (b *MemoryBlocklist) Add(_ context.Context, jti string, ttl time.Duration) error {
	var expires time.Time
	if ttl > 0 {
		expires = b.now().Add(ttl)
	}

	b.mu.Lock()
	b.entries[jti] = expires
	b.mu.Unlock()
	return nil
}

// Contains reports whether jti is revoked. An expired entry is dropped under
// the same lock that read it, so a concurrent Add for that jti is never lost.
func (b *MemoryBlocklist) Contains(_ context.Context, jti string) (bool, error) {
	now := b.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	expires, ok := b.entries[jti]
	if !ok {
		return false, nil
	}
	if !expires.IsZero() && now.After(expires) {
		delete(b.entries, jti)
		return false, nil
	}
	return true, nil
}

func (b *MemoryBlocklist) Clear(_ context.Context) error {
	b.mu.Lock()
	b.entries = make(map[string]time.Time)
	b.mu.Unlock()
	return nil
}

// Purge drops expired entries and reports how many were removed.
func (b *MemoryBlocklist) Purge() int {
	now := b.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for jti, expires := range b.entries {
		if !expires.IsZero() && now.After(expires) {
			delete(b.entries, jti)
			removed++
		}
	}
	return removed
}
