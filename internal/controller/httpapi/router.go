// Package httpapi implements routing paths. Each services in own file.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/device-management-toolkit/cacheboot/internal/cache"
	v1 "github.com/device-management-toolkit/cacheboot/internal/controller/httpapi/v1"
	"github.com/device-management-toolkit/cacheboot/pkg/logger"
)

// NewRouter registers the admin routes. m may be nil when no cache manager
// was published; the cache routes are then left out.
func NewRouter(handler *gin.Engine, l logger.Interface, m cache.Manager, gatherer prometheus.Gatherer) {
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	handler.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if m == nil {
		l.Warn("http - no cache manager published, cache routes disabled")

		return
	}

	h := handler.Group("/api/v1")
	{
		v1.NewCacheRoutes(h, m, l)
	}
}
