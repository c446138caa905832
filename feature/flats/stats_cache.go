package flats

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// StatsCache keeps rendered stats reports for a short time. Concurrent misses
// for the same key share one load.
type StatsCache struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu         sync.Mutex
	entries    map[string]statsEntry
	generation uint64
}

type statsEntry struct {
	text    string
	expires time.Time
}

// NewStatsCache creates a cache. A non-positive ttl disables storing results.
func NewStatsCache(ttl time.Duration) *StatsCache {
	return &StatsCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]statsEntry),
	}
}

// Get returns the cached text for key, calling load on a miss.
func (c *StatsCache) Get(ctx context.Context, key string, load func(context.Context) (string, error)) (string, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Before(e.expires) {
		c.mu.Unlock()
		return e.text, nil
	}
	gen := c.generation
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		text, err := load(ctx)
		if err != nil {
			return "", err
		}
		c.store(key, text, gen)
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// store keeps text unless the cache was invalidated while it was loading.
func (c *StatsCache) store(key, text string, gen uint64) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.entries[key] = statsEntry{text: text, expires: c.now().Add(c.ttl)}
}

// Invalidate drops every entry. Loads already in flight are not stored.
func (c *StatsCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	clear(c.entries)
}
