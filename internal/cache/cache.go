// Package cache defines the cache abstraction the application publishes and
// the adapters that expose a heapcache.Manager through it.
package cache

// Manager is the published cache-manager capability.
type Manager interface {
	// Cache returns the named cache, or nil if the manager has none.
	Cache(name string) Cache
	// CacheNames lists the caches the manager knows about.
	CacheNames() []string
}

// Cache is a named key/value cache.
type Cache interface {
	Name() string
	Get(key string) (interface{}, bool)
	Put(key string, value interface{})
	// PutIfAbsent returns the existing value and true when key is present.
	PutIfAbsent(key string, value interface{}) (interface{}, bool)
	Evict(key string)
	Clear()
}
