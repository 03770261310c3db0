// Package container holds the application-scoped objects wired at startup:
// the single published cache manager, the cache customizers and the hooks
// run on shutdown.
package container

import (
	"errors"
	"sync"

	"github.com/device-management-toolkit/cacheboot/internal/cache"
)

// ErrCacheManagerExists is returned when a second cache manager is published.
var ErrCacheManagerExists = errors.New("container: a cache manager is already registered")

// Container -.
type Container struct {
	mu            sync.Mutex
	cacheManager  cache.Manager
	customizers   []interface{}
	shutdownHooks []func() error
}

// New -.
func New() *Container {
	return &Container{}
}

// CacheManager returns the published cache manager, if any.
func (c *Container) CacheManager() (cache.Manager, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cacheManager, c.cacheManager != nil
}

// SetCacheManager publishes m. Only one cache manager may be published.
func (c *Container) SetCacheManager(m cache.Manager) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cacheManager != nil {
		return ErrCacheManagerExists
	}

	c.cacheManager = m

	return nil
}

// RegisterCustomizer appends a cache.Customizer for some manager type.
func (c *Container) RegisterCustomizer(customizer interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.customizers = append(c.customizers, customizer)
}

// Customizers returns the registered customizers in registration order.
func (c *Container) Customizers() []interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]interface{}, len(c.customizers))
	copy(out, c.customizers)

	return out
}

// OnShutdown registers fn to run on Shutdown. Hooks run last-registered first.
func (c *Container) OnShutdown(fn func() error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.shutdownHooks = append(c.shutdownHooks, fn)
}

// Shutdown runs every hook once, even when earlier hooks fail.
func (c *Container) Shutdown() error {
	c.mu.Lock()
	hooks := c.shutdownHooks
	c.shutdownHooks = nil
	c.mu.Unlock()

	var errs []error

	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
