package autoconfig

import (
	"github.com/device-management-toolkit/cacheboot/internal/cache"
)

type (
	// Classpath reports which cache providers are linked into the binary.
	Classpath interface {
		Available(provider string) bool
	}

	// Container is where the selected cache manager is published.
	Container interface {
		CacheManager() (cache.Manager, bool)
		SetCacheManager(m cache.Manager) error
		Customizers() []interface{}
		OnShutdown(fn func() error)
	}
)

// ClasspathFunc adapts a function to Classpath.
type ClasspathFunc func(provider string) bool

// Available -.
func (f ClasspathFunc) Available(provider string) bool {
	return f(provider)
}

// ProviderClasspath checks the providers registered with the cache package.
var ProviderClasspath Classpath = ClasspathFunc(cache.ProviderAvailable)
