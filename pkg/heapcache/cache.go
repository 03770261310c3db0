package heapcache

import (
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Statistics is a snapshot of a cache's counters.
type Statistics struct {
	Size   int   `json:"size"`
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Puts   int64 `json:"puts"`
	// Evictions counts entries dropped by expiry or by Remove.
	Evictions int64 `json:"evictions"`
}

// Cache is a named key/value store with a fixed entry lifetime.
// It is safe for concurrent use.
type Cache struct {
	name  string
	ttl   time.Duration
	store *gocache.Cache

	hits      atomic.Int64
	misses    atomic.Int64
	puts      atomic.Int64
	evictions atomic.Int64
}

func newCache(cfg CacheConfiguration, cleanupInterval time.Duration) *Cache {
	expiration := cfg.TTL()
	if expiration == 0 {
		expiration = gocache.NoExpiration
	}

	c := &Cache{
		name:  cfg.Name,
		ttl:   cfg.TTL(),
		store: gocache.New(expiration, cleanupInterval),
	}

	c.store.OnEvicted(func(string, interface{}) {
		c.evictions.Add(1)
	})

	return c
}

// Name -.
func (c *Cache) Name() string {
	return c.name
}

// TTL returns the entry lifetime, 0 for eternal caches.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the value stored under key.
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.store.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}

	return v, ok
}

// Put stores value under key, replacing any previous value.
func (c *Cache) Put(key string, value interface{}) {
	c.store.SetDefault(key, value)
	c.puts.Add(1)
}

// PutIfAbsent stores value only if key holds no live entry. It returns the
// existing value and true when one was found.
func (c *Cache) PutIfAbsent(key string, value interface{}) (interface{}, bool) {
	for {
		if err := c.store.Add(key, value, gocache.DefaultExpiration); err == nil {
			c.puts.Add(1)

			return nil, false
		}

		// the entry may expire between Add and Get; retry in that case
		if existing, ok := c.store.Get(key); ok {
			return existing, true
		}
	}
}

// Remove deletes key.
func (c *Cache) Remove(key string) {
	c.store.Delete(key)
}

// RemoveAll deletes every entry.
func (c *Cache) RemoveAll() {
	c.store.Flush()
}

// Size returns the number of stored entries, including expired entries
// that have not been cleaned up yet.
func (c *Cache) Size() int {
	return c.store.ItemCount()
}

// Statistics -.
func (c *Cache) Statistics() Statistics {
	return Statistics{
		Size:      c.Size(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Puts:      c.puts.Load(),
		Evictions: c.evictions.Load(),
	}
}
