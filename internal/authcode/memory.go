package authcode

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	username  string
	expiresAt time.Time
}

// MemoryStore is a mutex-guarded in-memory code store for single-process
// deployments and tests.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, code, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Drop stale codes while we hold the lock
	now := s.now()
	for existing, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, existing)
		}
	}

	s.entries[code] = memoryEntry{
		username:  username,
		expiresAt: now.Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Take(_ context.Context, code string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[code]
	if !ok {
		return "", ErrCodeNotFound
	}
	delete(s.entries, code)

	if s.now().After(entry.expiresAt) {
		return "", ErrCodeNotFound
	}
	return entry.username, nil
}
