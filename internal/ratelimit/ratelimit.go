// Package ratelimit implements a fixed-window request counter keyed by client
// identifier. The window state lives behind a narrow Store interface so a
// shared external store can replace the in-process map without touching the
// pipeline; the bundled MemoryStore is per-instance only, and under horizontal
// scaling the effective limit is max * instance_count.
package ratelimit

import (
	"sync"
	"time"
)

// State is the per-client window counter.
type State struct {
	Count           int
	WindowExpiresAt time.Time
}

// Store persists window state per client key. Increment must apply the
// read-reset-increment sequence atomically for a given key so two concurrent
// requests cannot both observe a count below the threshold.
type Store interface {
	// Increment bumps the counter for key, lazily resetting the window when
	// now is past its expiry, and returns the resulting state.
	Increment(key string, now time.Time, window time.Duration) State
}

// MemoryStore is a mutex-guarded in-process Store. Entries are reset lazily;
// there is no background teardown.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*State),
	}
}

func (s *MemoryStore) Increment(key string, now time.Time, window time.Duration) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		entry = &State{WindowExpiresAt: now.Add(window)}
		s.entries[key] = entry
	}

	// Lazy window reset: zero the count and re-arm the window from this
	// request's arrival time.
	if now.After(entry.WindowExpiresAt) {
		entry.Count = 0
		entry.WindowExpiresAt = now.Add(window)
	}

	entry.Count++
	return *entry
}

// Limiter bounds requests per client within a fixed window.
type Limiter struct {
	store  Store
	max    int
	window time.Duration
}

func NewLimiter(store Store, max int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		max:    max,
		window: window,
	}
}

// Allow records one request for key at time now and reports whether it is
// within the configured limit.
func (l *Limiter) Allow(key string, now time.Time) bool {
	state := l.store.Increment(key, now, l.window)
	return state.Count <= l.max
}
