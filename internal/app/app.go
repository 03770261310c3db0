// Package app configures and runs application.
package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/device-management-toolkit/cacheboot/config"
	"github.com/device-management-toolkit/cacheboot/internal/autoconfig"
	"github.com/device-management-toolkit/cacheboot/internal/cache"
	"github.com/device-management-toolkit/cacheboot/internal/container"
	"github.com/device-management-toolkit/cacheboot/internal/controller/httpapi"
	"github.com/device-management-toolkit/cacheboot/pkg/httpserver"
	"github.com/device-management-toolkit/cacheboot/pkg/logger"
	"github.com/device-management-toolkit/cacheboot/pkg/resource"
)

var Version = "DEVELOPMENT"

// Option prepares the container before the cache configuration runs.
type Option func(c *container.Container) error

// WithCacheManager publishes m up front. The heap cache configuration then
// backs off.
func WithCacheManager(m cache.Manager) Option {
	return func(c *container.Container) error {
		return c.SetCacheManager(m)
	}
}

// WithCustomizer registers a cache.Customizer. Customizers run in the order
// they are registered, after the cache_names customizer.
func WithCustomizer(customizer interface{}) Option {
	return func(c *container.Container) error {
		c.RegisterCustomizer(customizer)

		return nil
	}
}

// Build creates the container and runs the cache configuration against it.
// The returned manager is nil when none was published.
func Build(cfg *config.Config, log logger.Interface, opts ...Option) (*container.Container, cache.Manager, error) {
	c := container.New()
	c.RegisterCustomizer(cacheNamesCustomizer(cfg.CacheNames, log))

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, nil, fmt.Errorf("app - Build - option: %w", err)
		}
	}

	heap := autoconfig.New(cfg.Cache, resource.NewDirLoader(cfg.ResourceDir), autoconfig.ProviderClasspath, log)

	if _, err := heap.Configure(c); err != nil {
		_ = c.Shutdown()

		return nil, nil, fmt.Errorf("app - Build - heap cache configuration: %w", err)
	}

	m, _ := c.CacheManager()

	return c, m, nil
}

// cacheNamesCustomizer adds the caches listed in cache.cache_names that the
// configuration file does not declare.
func cacheNamesCustomizer(names []string, log logger.Interface) cache.CustomizerFunc[*cache.HeapManager] {
	return func(m *cache.HeapManager) {
		for _, name := range names {
			if m.Cache(name) != nil {
				continue
			}

			if _, err := m.Native().AddCache(name); err != nil {
				log.Warn("app - cache_names - cannot add cache %s: %v", name, err)
			}
		}
	}
}

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Level)
	cfg.Version = Version
	log.Info("app - Run - version: " + cfg.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)

	beans, m, err := Build(cfg, log)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - Build: %w", err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if hm, ok := m.(*cache.HeapManager); ok {
		registry.MustRegister(cache.NewCollector(hm))
	}

	handler := setupHTTPHandler(cfg, log, m, registry)

	httpServer := httpserver.New(
		handler,
		httpserver.Port(cfg.Host, cfg.Port),
		httpserver.TLS(cfg.TLS.Enabled, cfg.TLS.CertFile, cfg.TLS.KeyFile),
		httpserver.Logger(log),
	)

	waitForShutdown(log, httpServer)

	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	if err := beans.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - container.Shutdown: %w", err))
	}
}

func setupHTTPHandler(cfg *config.Config, log logger.Interface, m cache.Manager, gatherer prometheus.Gatherer) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()

	defaultConfig := cors.DefaultConfig()
	defaultConfig.AllowOrigins = cfg.AllowedOrigins
	defaultConfig.AllowHeaders = cfg.AllowedHeaders

	handler.Use(cors.New(defaultConfig))
	httpapi.NewRouter(handler, log, m, gatherer)

	// Optionally enable pprof endpoints via env ENABLE_PPROF=true
	if os.Getenv("ENABLE_PPROF") == "true" {
		ginpprof.Register(handler, "debug/pprof")
		log.Info("pprof enabled at /debug/pprof/")
	}

	return handler
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}
}
