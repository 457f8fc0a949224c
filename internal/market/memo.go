package market

import (
	"sync"
	"time"
)

// Memo is a generic TTL memoizer: explicit cache-lookup-then-store keyed by
// string, one independently constructible and clearable instance per use
// site. The derived-analytics and sentiment services use it for their
// ancillary caches; it is unrelated to the bulk quote cache.
type Memo[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     Clock
	entries map[string]memoEntry[V]
}

type memoEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// NewMemo builds a memoizer whose entries live for ttl.
func NewMemo[V any](ttl time.Duration) *Memo[V] {
	return &Memo[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoEntry[V]),
	}
}

// Get returns the cached value for key, or runs fill and stores its result.
// Errors are not cached: a failed fill leaves the key empty so the next
// call retries.
func (m *Memo[V]) Get(key string, fill func() (V, error)) (V, error) {
	m.mu.Lock()
	if e, ok := m.entries[key]; ok && m.now().Before(e.expiresAt) {
		m.mu.Unlock()
		return e.value, nil
	}
	m.mu.Unlock()

	v, err := fill()
	if err != nil {
		var zero V
		return zero, err
	}

	m.mu.Lock()
	m.entries[key] = memoEntry[V]{value: v, expiresAt: m.now().Add(m.ttl)}
	m.mu.Unlock()
	return v, nil
}

// Len reports the number of stored entries, expired or not.
func (m *Memo[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Clear drops all entries.
func (m *Memo[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]memoEntry[V])
}
