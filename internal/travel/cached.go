package travel

import (
	"sync"

	"github.com/jonathan/match-engine/internal/scoring"
	"github.com/jonathan/match-engine/internal/types"
)

// CachedProvider memoizes lookups against a slower provider. Misses are
// cached too, so a route the backend cannot answer is asked only once.
type CachedProvider struct {
	backend scoring.TravelTimeProvider

	mu      sync.RWMutex
	entries map[string]cachedEntry
	hits    int64
	misses  int64
}

type cachedEntry struct {
	minutes int
	ok      bool
}

// NewCachedProvider wraps the given provider with a memoizing cache.
func NewCachedProvider(backend scoring.TravelTimeProvider) *CachedProvider {
	return &CachedProvider{
		backend: backend,
		entries: make(map[string]cachedEntry),
	}
}

// GetTravelMinutes serves from cache when possible, otherwise consults the
// backend and remembers the answer.
func (c *CachedProvider) GetTravelMinutes(origin, destination types.Location) (int, bool) {
	key, valid := routeKey(origin.City, destination.City)
	if !valid {
		return 0, false
	}

	c.mu.RLock()
	entry, found := c.entries[key]
	c.mu.RUnlock()
	if found {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return entry.minutes, entry.ok
	}

	minutes, ok := c.backend.GetTravelMinutes(origin, destination)

	c.mu.Lock()
	c.misses++
	c.entries[key] = cachedEntry{minutes: minutes, ok: ok}
	c.mu.Unlock()
	return minutes, ok
}

// Stats returns the cache hit and miss counts so far.
func (c *CachedProvider) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
