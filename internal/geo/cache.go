package geo

import (
	"context"
	"sync"
	"time"
)

// DivisionCache memoizes division lists per lookup key with a TTL. Each
// cache miss is stamped with a per-key generation; a fetch that finishes
// after a newer fetch started is returned to its own caller but never
// stored, so a slow stale response cannot overwrite fresher data.
type DivisionCache struct {
	TTL time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
	gen     map[string]uint64
}

type cacheEntry struct {
	list      []Division
	fetchedAt time.Time
}

func NewDivisionCache(ttl time.Duration) *DivisionCache {
	return &DivisionCache{
		TTL:     ttl,
		entries: map[string]cacheEntry{},
		gen:     map[string]uint64{},
	}
}

// Get returns the cached list for key, or runs fetch and caches its result
// if it is still the newest fetch for that key when it completes.
func (c *DivisionCache) Get(ctx context.Context, key string, fetch func(context.Context) ([]Division, error)) ([]Division, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && time.Since(e.fetchedAt) < c.TTL {
		out := make([]Division, len(e.list))
		copy(out, e.list)
		c.mu.Unlock()
		return out, nil
	}
	c.gen[key]++
	myGen := c.gen[key]
	c.mu.Unlock()

	list, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.gen[key] == myGen {
		c.entries[key] = cacheEntry{list: list, fetchedAt: time.Now()}
	}
	c.mu.Unlock()

	return list, nil
}
