package cache

import (
	"sync"

	"github.com/device-management-toolkit/cacheboot/pkg/heapcache"
)

func init() {
	RegisterProvider(ProviderHeap)
}

// HeapManager exposes a heapcache.Manager as a Manager. Cache adapters are
// created once per name and reused.
type HeapManager struct {
	native *heapcache.Manager

	mu     sync.Mutex
	caches map[string]*HeapCache
}

var _ Manager = (*HeapManager)(nil)

// NewHeapManager wraps native. Call Initialize before publishing.
func NewHeapManager(native *heapcache.Manager) *HeapManager {
	return &HeapManager{
		native: native,
		caches: make(map[string]*HeapCache),
	}
}

// Initialize creates adapters for every cache the native manager declares.
func (m *HeapManager) Initialize() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, name := range m.native.CacheNames() {
		if c := m.native.Cache(name); c != nil {
			m.caches[name] = &HeapCache{native: c}
		}
	}
}

// Native returns the wrapped manager.
func (m *HeapManager) Native() *heapcache.Manager {
	return m.native
}

// Cache returns the adapter for name. Caches added to the native manager
// after Initialize are picked up lazily; unknown names return nil.
func (m *HeapManager) Cache(name string) Cache {
	if c := m.heapCache(name); c != nil {
		return c
	}

	return nil
}

// HeapCache is Cache with access to the native statistics.
func (m *HeapManager) HeapCache(name string) *HeapCache {
	return m.heapCache(name)
}

func (m *HeapManager) heapCache(name string) *HeapCache {
	m.mu.Lock()
	defer m.mu.Unlock()

	native := m.native.Cache(name)
	if native == nil {
		delete(m.caches, name)

		return nil
	}

	if c, ok := m.caches[name]; ok && c.native == native {
		return c
	}

	c := &HeapCache{native: native}
	m.caches[name] = c

	return c
}

// CacheNames -.
func (m *HeapManager) CacheNames() []string {
	return m.native.CacheNames()
}

// HeapCache adapts a heapcache.Cache.
type HeapCache struct {
	native *heapcache.Cache
}

var _ Cache = (*HeapCache)(nil)

// Name -.
func (c *HeapCache) Name() string {
	return c.native.Name()
}

// Get -.
func (c *HeapCache) Get(key string) (interface{}, bool) {
	return c.native.Get(key)
}

// Put -.
func (c *HeapCache) Put(key string, value interface{}) {
	c.native.Put(key, value)
}

// PutIfAbsent -.
func (c *HeapCache) PutIfAbsent(key string, value interface{}) (interface{}, bool) {
	return c.native.PutIfAbsent(key, value)
}

// Evict -.
func (c *HeapCache) Evict(key string) {
	c.native.Remove(key)
}

// Clear -.
func (c *HeapCache) Clear() {
	c.native.RemoveAll()
}

// Native returns the wrapped cache.
func (c *HeapCache) Native() *heapcache.Cache {
	return c.native
}

// Statistics -.
func (c *HeapCache) Statistics() heapcache.Statistics {
	return c.native.Statistics()
}
