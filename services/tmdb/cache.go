package tmdb

import (
	"sync"

	"github.com/google/uuid"
)

// RequestCache memoizes upstream calls within a single render pass. The
// details overlay and the aggregator can ask for the same path in one
// pass; the first caller issues the request, later callers wait on it and
// share the outcome. A fresh cache is constructed per pass, so there is
// no TTL and no cross-request invalidation.
type RequestCache struct {
	id string

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	wg   sync.WaitGroup
	body []byte
	err  error
}

func NewRequestCache() *RequestCache {
	return &RequestCache{
		id:      uuid.NewString()[:8],
		entries: make(map[string]*cacheEntry),
	}
}

// ID identifies the render pass in logs.
func (c *RequestCache) ID() string { return c.id }

// Do returns the memoized result for key, calling fetch at most once per
// key for the cache's lifetime. Errors are memoized too: a failed call is
// not retried within the same pass.
func (c *RequestCache) Do(key string, fetch func() ([]byte, error)) ([]byte, error) {
	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		c.mu.Unlock()
		entry.wg.Wait()
		return entry.body, entry.err
	}

	entry := &cacheEntry{}
	entry.wg.Add(1)
	c.entries[key] = entry
	c.mu.Unlock()

	entry.body, entry.err = fetch()
	entry.wg.Done()
	return entry.body, entry.err
}
