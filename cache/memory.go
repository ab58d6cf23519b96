// Package cache provides caching implementations for Rolodex search results.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xraph/rolodex"
	"github.com/xraph/rolodex/contact"
)

// Compile-time interface check.
var _ rolodex.Cache = (*Memory)(nil)

// Memory is an in-memory cache with TTL-based expiration.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
	maxSize int
}

type entry struct {
	contacts  []*contact.Contact
	expiresAt time.Time
}

// MemoryOption configures the memory cache.
type MemoryOption func(*Memory)

// WithTTL sets the cache entry time-to-live. Zero disables expiry.
func WithTTL(ttl time.Duration) MemoryOption {
	return func(m *Memory) { m.ttl = ttl }
}

// WithMaxSize sets the maximum number of cache entries.
func WithMaxSize(n int) MemoryOption {
	return func(m *Memory) { m.maxSize = n }
}

// NewMemory creates a new in-memory cache.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		entries: make(map[string]*entry),
		ttl:     5 * time.Minute,
		maxSize: 1000,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns a cached result set.
func (m *Memory) Get(_ context.Context, ownerID, term string) ([]*contact.Contact, bool) {
	key := cacheKey(ownerID, term)
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	return cloneAll(e.contacts), true
}

// Set stores a result set in the cache.
func (m *Memory) Set(_ context.Context, ownerID, term string, contacts []*contact.Contact) {
	key := cacheKey(ownerID, term)
	m.mu.Lock()
	defer m.mu.Unlock()

	// Evict if at capacity.
	if m.maxSize > 0 && len(m.entries) >= m.maxSize {
		m.evictExpired()
		if len(m.entries) >= m.maxSize {
			// Evict one arbitrary entry.
			m.evictOne()
		}
	}

	var expiresAt time.Time
	if m.ttl > 0 {
		expiresAt = time.Now().Add(m.ttl)
	}
	m.entries[key] = &entry{contacts: cloneAll(contacts), expiresAt: expiresAt}
}

// cloneAll copies a result set so cached records are never shared with
// callers on either side.
func cloneAll(contacts []*contact.Contact) []*contact.Contact {
	out := make([]*contact.Contact, len(contacts))
	for i, c := range contacts {
		out[i] = c.Clone()
	}
	return out
}

// InvalidateOwner removes all cached results for an owner.
func (m *Memory) InvalidateOwner(_ context.Context, ownerID string) {
	prefix := ownerID + ":"
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(m.entries, k)
		}
	}
}

func cacheKey(ownerID, term string) string {
	return fmt.Sprintf("%s:%s", ownerID, term)
}

// evictExpired removes all expired entries. Must hold write lock.
func (m *Memory) evictExpired() {
	now := time.Now()
	for k, e := range m.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(m.entries, k)
		}
	}
}

// evictOne removes one arbitrary entry. Must hold write lock.
func (m *Memory) evictOne() {
	for k := range m.entries {
		delete(m.entries, k)
		return
	}
}
