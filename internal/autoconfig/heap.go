// Package autoconfig decides at startup whether a heap cache manager is
// published, and builds it from the configured or default resource.
package autoconfig

import (
	"fmt"

	"github.com/device-management-toolkit/cacheboot/config"
	"github.com/device-management-toolkit/cacheboot/internal/cache"
	"github.com/device-management-toolkit/cacheboot/pkg/heapcache"
	"github.com/device-management-toolkit/cacheboot/pkg/logger"
	"github.com/device-management-toolkit/cacheboot/pkg/resource"
)

// DefaultConfigLocation is looked up when cache.heap.config is not set.
const DefaultConfigLocation = resource.ClasspathPrefix + "heapcache.xml"

const configProperty = "cache.heap.config"

var requiredProviders = []string{cache.ProviderHeap}

// Outcome is the result of evaluating the activation conditions.
type Outcome struct {
	Match   bool
	Message string
}

func match(format string, args ...interface{}) Outcome {
	return Outcome{Match: true, Message: fmt.Sprintf(format, args...)}
}

func noMatch(format string, args ...interface{}) Outcome {
	return Outcome{Match: false, Message: fmt.Sprintf(format, args...)}
}

// HeapCacheConfiguration builds and publishes a heap cache manager.
type HeapCacheConfiguration struct {
	properties config.Cache
	loader     *resource.Loader
	classpath  Classpath
	log        logger.Interface
}

// New -.
func New(properties config.Cache, loader *resource.Loader, classpath Classpath, log logger.Interface) *HeapCacheConfiguration {
	return &HeapCacheConfiguration{
		properties: properties,
		loader:     loader,
		classpath:  classpath,
		log:        log,
	}
}

// ShouldActivate evaluates, in order: required providers present, no cache
// manager already published, cache type compatible, and a configuration
// source available. It has no side effects.
func (h *HeapCacheConfiguration) ShouldActivate(c Container) Outcome {
	for _, p := range requiredProviders {
		if !h.classpath.Available(p) {
			return noMatch("required cache provider '%s' not found", p)
		}
	}

	if _, ok := c.CacheManager(); ok {
		return noMatch("found an existing cache manager")
	}

	if t := h.properties.Type; t != "" && t != config.CacheTypeHeap {
		return noMatch("cache type '%s' is not '%s'", t, config.CacheTypeHeap)
	}

	if h.properties.Heap.Config != "" {
		return match("found property %s", configProperty)
	}

	if def := h.loader.Resource(DefaultConfigLocation); def.Exists() {
		return match("found default configuration %s", def.Description())
	}

	return noMatch("did not find property %s nor default configuration %s", configProperty, DefaultConfigLocation)
}

// ResolveLocation returns the configured location, else the default
// resource when it exists, else nil. A configured location is returned
// whether or not it exists; BuildManager reports the read failure.
func (h *HeapCacheConfiguration) ResolveLocation() resource.Resource {
	if h.properties.Heap.Config != "" {
		return h.loader.Resource(h.properties.Heap.Config)
	}

	if def := h.loader.Resource(DefaultConfigLocation); def.Exists() {
		return def
	}

	return nil
}

// BuildManager constructs the native manager from loc, or from the library
// defaults when loc is nil. heapcache errors are returned as is.
func (h *HeapCacheConfiguration) BuildManager(loc resource.Resource) (*heapcache.Manager, error) {
	if loc == nil {
		h.log.Debug("autoconfig - BuildManager - no configuration resource, using heapcache defaults")

		return heapcache.New(heapcache.DefaultConfiguration())
	}

	rc, err := loc.Open()
	if err != nil {
		return nil, fmt.Errorf("cache configuration does not exist '%s': %w", loc.Description(), err)
	}
	defer rc.Close()

	cfg, err := heapcache.ParseConfiguration(rc, heapcache.FormatFor(loc.Filename()))
	if err != nil {
		return nil, err
	}

	h.log.Debug("autoconfig - BuildManager - loaded " + loc.Description())

	return heapcache.New(cfg)
}

// Adapt wraps native and applies customizers in registration order.
func (h *HeapCacheConfiguration) Adapt(native *heapcache.Manager, customizers []interface{}) *cache.HeapManager {
	m := cache.NewHeapManager(native)
	m.Initialize()

	return cache.Customize(cache.NewCustomizers(customizers...), m)
}

// Configure runs the whole selection against c. It returns a nil manager
// and nil error when the conditions do not match.
func (h *HeapCacheConfiguration) Configure(c Container) (cache.Manager, error) {
	outcome := h.ShouldActivate(c)
	if !outcome.Match {
		h.log.Info("autoconfig - HeapCacheConfiguration did not match: " + outcome.Message)

		return nil, nil
	}

	h.log.Info("autoconfig - HeapCacheConfiguration matched: " + outcome.Message)

	native, err := h.BuildManager(h.ResolveLocation())
	if err != nil {
		return nil, err
	}

	m := h.Adapt(native, c.Customizers())

	if err := c.SetCacheManager(m); err != nil {
		native.Shutdown()

		return nil, err
	}

	c.OnShutdown(func() error {
		native.Shutdown()

		return nil
	})

	h.log.Info(fmt.Sprintf("autoconfig - published heap cache manager '%s' with caches %v", native.Name(), m.CacheNames()))

	return m, nil
}
