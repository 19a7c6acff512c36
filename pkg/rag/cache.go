package rag

import (
	"strings"
	"sync"
	"time"
)

// cacheKey identifies one memoized search.
type cacheKey struct {
	query string
	mode  string
}

type cacheEntry struct {
	results   []string
	expiresAt time.Time
}

// Cache memoizes projected search results on (normalizedQuery, mode) with a
// TTL. Expired entries are removed lazily on access.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
}

// NewCache creates a cache whose entries expire after ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
	}
}

// Get returns cached results for the query and mode, or ok=false.
func (c *Cache) Get(query, mode string) ([]string, bool) {
	key := cacheKey{query: normalizeQuery(query), mode: mode}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.results, true
}

// Set stores results for the query and mode.
func (c *Cache) Set(query, mode string, results []string) {
	key := cacheKey{query: normalizeQuery(query), mode: mode}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{
		results:   results,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}

// Len returns the number of live entries, counting expired ones until they
// are touched.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
