// Package querycache implements the keyed read cache of the data
// access layer. Every remote read is stored under a canonical key
// derived from the operation name and its parameters; mutations
// invalidate exactly the keys whose data they could have changed. The
// cache is small and unbounded with no eviction policy: entries leave
// only through explicit invalidation or process restart.
package querycache

import (
	"strings"
	"sync"
)

const keySeparator = ":"

// Key builds the canonical cache key for an operation and its
// parameters, e.g. Key("menuItems", categoryID).
func Key(op string, params ...string) string {
	if len(params) == 0 {
		return op
	}

	return op + keySeparator + strings.Join(params, keySeparator)
}

// Cache is a concurrency-safe map from canonical keys to cached read
// results. Concurrent writers to the same key are not serialized
// beyond the map lock; last write wins.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]any)}
}

// Get returns the value cached under key, if any.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.entries[key]

	return value, ok
}

// Set stores value under key, replacing any previous entry.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
}

// Invalidate drops the entries for the given keys. Missing keys are
// ignored.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
	}
}

// InvalidateOp drops every entry belonging to an operation, whatever
// its parameters: the operation's parameterless key and all keys
// derived from it. Used when a mutation can touch an unknown subset of
// a parameterized read (e.g. all per-category item lists).
func (c *Cache) InvalidateOp(op string) {
	prefix := op + keySeparator

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, op)
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Lookup returns the entry under key when it is present and of type T.
// A stored entry of another type counts as a miss.
func Lookup[T any](c *Cache, key string) (T, bool) {
	var zero T

	value, ok := c.Get(key)
	if !ok {
		return zero, false
	}

	typed, ok := value.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}
