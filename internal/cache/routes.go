package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tollwise/server/internal/lib/routing"
)

// RouteCache is a thread-safe in-memory cache of resolved routes with TTL.
// It sits in front of the provider chain so repeated queries for the same
// origin/destination do not dial out again while the entry is fresh.
// Synthetic routes are never cached; they are cheap to regenerate and a
// provider may come back before the TTL lapses.
type RouteCache struct {
	entries map[string]routeEntry
	mutex   sync.RWMutex
	ttl     time.Duration
}

type routeEntry struct {
	routes    []routing.Route
	expiresAt time.Time
}

// NewRouteCache creates a route cache with the given entry lifetime
func NewRouteCache(ttl time.Duration) *RouteCache {
	return &RouteCache{
		entries: make(map[string]routeEntry),
		ttl:     ttl,
	}
}

// Key builds the cache key for a resolution request
func Key(origin, destination string, alternatives bool) string {
	key := strings.ToLower(strings.TrimSpace(origin)) + "|" + strings.ToLower(strings.TrimSpace(destination))
	if alternatives {
		key += "|alt"
	}
	return key
}

// Get returns the cached routes for a key if the entry is still fresh
func (c *RouteCache) Get(key string) ([]routing.Route, bool) {
	c.mutex.RLock()
	entry, exists := c.entries[key]
	c.mutex.RUnlock()

	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.routes, true
}

// Set stores routes under a key with the cache's TTL
func (c *RouteCache) Set(key string, routes []routing.Route) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = routeEntry{
		routes:    routes,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Len returns the number of entries, fresh or stale
func (c *RouteCache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

// CleanupStale removes expired entries and reports how many were dropped
func (c *RouteCache) CleanupStale() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	var removed int
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// StartPeriodicCleanup evicts stale entries on an interval until the context
// is cancelled
func (c *RouteCache) StartPeriodicCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.CleanupStale()
			}
		}
	}()
}
