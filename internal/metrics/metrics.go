// Package metrics collects and exposes Prometheus counters for the local
// API surface.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests can create collectors freely
// without tripping duplicate-registration panics. A nil *Collector is a
// valid no-op recorder.
type Collector struct {
	registry *prometheus.Registry

	discoveryQueries prometheus.Counter
	reviewsCreated   prometheus.Counter
	reviewsDeleted   prometheus.Counter
	favoriteToggles  prometheus.Counter
	httpStatus       *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		discoveryQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courts_discovery_queries_total",
			Help: "Total discovery queries served.",
		}),
		reviewsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courts_reviews_created_total",
			Help: "Total reviews created.",
		}),
		reviewsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courts_reviews_deleted_total",
			Help: "Total reviews deleted.",
		}),
		favoriteToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courts_favorite_toggles_total",
			Help: "Total favorite toggle operations.",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courts_http_status_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
	}

	c.registry.MustRegister(
		c.discoveryQueries,
		c.reviewsCreated,
		c.reviewsDeleted,
		c.favoriteToggles,
		c.httpStatus,
	)
	return c
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) RecordDiscoveryQuery() {
	if c == nil {
		return
	}
	c.discoveryQueries.Inc()
}

func (c *Collector) RecordReviewCreated() {
	if c == nil {
		return
	}
	c.reviewsCreated.Inc()
}

func (c *Collector) RecordReviewDeleted() {
	if c == nil {
		return
	}
	c.reviewsDeleted.Inc()
}

func (c *Collector) RecordFavoriteToggle() {
	if c == nil {
		return
	}
	c.favoriteToggles.Inc()
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	if c == nil {
		return
	}
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}
