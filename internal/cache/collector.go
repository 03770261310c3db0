package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "cacheboot"

// Collector exports per-cache statistics of a HeapManager.
type Collector struct {
	manager *HeapManager

	size      *prometheus.Desc
	hits      *prometheus.Desc
	misses    *prometheus.Desc
	puts      *prometheus.Desc
	evictions *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector -.
func NewCollector(m *HeapManager) *Collector {
	labels := []string{"cache"}
	constLabels := prometheus.Labels{"manager": m.Native().Name()}

	return &Collector{
		manager:   m,
		size:      prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "cache", "size"), "Number of entries held by the cache.", labels, constLabels),
		hits:      prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "cache", "hits_total"), "Lookups that found an entry.", labels, constLabels),
		misses:    prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "cache", "misses_total"), "Lookups that found no entry.", labels, constLabels),
		puts:      prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "cache", "puts_total"), "Entries written.", labels, constLabels),
		evictions: prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "cache", "evictions_total"), "Entries dropped by expiry or eviction.", labels, constLabels),
	}
}

// Describe -.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.hits
	ch <- c.misses
	ch <- c.puts
	ch <- c.evictions
}

// Collect -.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, name := range c.manager.CacheNames() {
		hc := c.manager.HeapCache(name)
		if hc == nil {
			continue
		}

		stats := hc.Statistics()

		ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(stats.Size), name)
		ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits), name)
		ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses), name)
		ch <- prometheus.MustNewConstMetric(c.puts, prometheus.CounterValue, float64(stats.Puts), name)
		ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(stats.Evictions), name)
	}
}
