// Package cache provides an in-memory TTL cache with ETag support.
//
// Two expiry tiers cover the data this service handles: a short tier for
// in-season data that changes race to race, and a long tier for career
// aggregates that rarely change. Expiry is checked lazily on read; there
// is no background eviction goroutine, so a stale entry occupies memory
// only until the next lookup for its key.
package cache

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// TTL tiers.
const (
	TTLSeason = 1 * time.Hour    // Standings, calendars, race results
	TTLCareer = 24 * time.Hour   // Career aggregates — rarely change
	TTLDriver = 24 * time.Hour   // Driver profiles
	TTLNews   = 5 * time.Minute  // Filtered news responses
)

type entry struct {
	data      []byte
	etag      string
	expiresAt time.Time
}

// Cache is a thread-safe in-memory TTL cache. Writes are whole-value
// replacements; concurrent populate races for the same key are
// last-write-wins, which is harmless because values are pure functions
// of the key.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	enabled bool
	now     func() time.Time // injectable for expiry tests
}

// New creates a new cache. Pass enabled=false to create a no-op cache.
func New(enabled bool) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		enabled: enabled,
		now:     time.Now,
	}
}

// Get retrieves a cached value. An expired entry counts as a miss and is
// deleted on the spot.
func (c *Cache) Get(key string) (data []byte, etag string, ok bool) {
	if !c.enabled {
		return nil, "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	e, exists := c.entries[key]
	if !exists {
		return nil, "", false
	}
	// Freshness is strict: an entry read exactly at its deadline is stale.
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, "", false
	}
	return e.data, e.etag, true
}

// Set stores a value with a TTL and returns its ETag.
func (c *Cache) Set(key string, data []byte, ttl time.Duration) string {
	etag := ComputeETag(data)
	if !c.enabled {
		return etag
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		data:      data,
		etag:      etag,
		expiresAt: c.now().Add(ttl),
	}
	return etag
}

// GetJSON retrieves a cached value and unmarshals it into v.
func (c *Cache) GetJSON(key string, v interface{}) bool {
	data, _, ok := c.Get(key)
	if !ok {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// SetJSON marshals v and stores it with a TTL. Marshal failures are
// swallowed: the value simply is not cached.
func (c *Cache) SetJSON(key string, v interface{}, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.Set(key, data, ttl)
}

// Stats returns cache statistics.
func (c *Cache) Stats() map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	active := 0
	now := c.now()
	for _, e := range c.entries {
		if now.Before(e.expiresAt) {
			active++
		}
	}
	return map[string]interface{}{
		"enabled":      c.enabled,
		"total_keys":   len(c.entries),
		"active_keys":  active,
		"expired_keys": len(c.entries) - active,
	}
}

// SetClock replaces the wall clock. Test hook.
func (c *Cache) SetClock(now func() time.Time) { c.now = now }

// ComputeETag generates a weak ETag from response data using MD5.
func ComputeETag(data []byte) string {
	hash := md5.Sum(data)
	return fmt.Sprintf(`W/"%x"`, hash[:8])
}

// CheckETagMatch checks if an If-None-Match header matches the current ETag.
func CheckETagMatch(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	if ifNoneMatch == "*" {
		return true
	}
	return ifNoneMatch == etag
}
