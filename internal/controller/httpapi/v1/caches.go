package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/cacheboot/internal/cache"
	"github.com/device-management-toolkit/cacheboot/pkg/heapcache"
	"github.com/device-management-toolkit/cacheboot/pkg/logger"
)

type cacheRoutes struct {
	m cache.Manager
	l logger.Interface
}

// CacheList -.
type CacheList struct {
	Caches []string `json:"caches"`
}

// CacheInfo describes one cache. Statistics are only reported for heap caches.
type CacheInfo struct {
	Name       string                `json:"name"`
	TTLSeconds *int64                `json:"ttlSeconds,omitempty"`
	Statistics *heapcache.Statistics `json:"statistics,omitempty"`
}

// ManagerInfo -.
type ManagerInfo struct {
	Name   string   `json:"name,omitempty"`
	Status string   `json:"status,omitempty"`
	Caches []string `json:"caches"`
}

// NewCacheRoutes -.
func NewCacheRoutes(handler *gin.RouterGroup, m cache.Manager, l logger.Interface) {
	r := &cacheRoutes{m: m, l: l}

	h := handler.Group("/caches")
	{
		h.GET("", r.list)
		h.GET("/:name", r.get)
		h.DELETE("/:name", r.clear)
	}

	mgr := handler.Group("/cachemanager")
	{
		mgr.GET("", r.manager)
		mgr.GET("/config", r.config)
	}
}

func (r *cacheRoutes) list(c *gin.Context) {
	c.JSON(http.StatusOK, CacheList{Caches: r.m.CacheNames()})
}

func (r *cacheRoutes) get(c *gin.Context) {
	name := c.Param("name")

	cc := r.m.Cache(name)
	if cc == nil {
		notFoundResponse(c, "cache "+name+" does not exist")

		return
	}

	info := CacheInfo{Name: cc.Name()}

	if hc, ok := cc.(*cache.HeapCache); ok {
		stats := hc.Statistics()
		ttl := int64(hc.Native().TTL().Seconds())
		info.Statistics = &stats
		info.TTLSeconds = &ttl
	}

	c.JSON(http.StatusOK, info)
}

func (r *cacheRoutes) clear(c *gin.Context) {
	name := c.Param("name")

	cc := r.m.Cache(name)
	if cc == nil {
		notFoundResponse(c, "cache "+name+" does not exist")

		return
	}

	cc.Clear()
	r.l.Info("http - v1 - clear - cache " + name + " cleared")

	c.Status(http.StatusNoContent)
}

func (r *cacheRoutes) manager(c *gin.Context) {
	info := ManagerInfo{Caches: r.m.CacheNames()}

	if hm, ok := r.m.(*cache.HeapManager); ok {
		info.Name = hm.Native().Name()
		info.Status = hm.Native().Status().String()
	}

	c.JSON(http.StatusOK, info)
}

func (r *cacheRoutes) config(c *gin.Context) {
	hm, ok := r.m.(*cache.HeapManager)
	if !ok {
		notFoundResponse(c, "cache manager does not expose a configuration")

		return
	}

	out, err := hm.Native().Configuration().PrettyXML()
	if err != nil {
		r.l.Error(err, "http - v1 - config")
		errorResponse(c, err)

		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(out))
}
