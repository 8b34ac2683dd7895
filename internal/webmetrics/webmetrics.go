// Package webmetrics exposes Prometheus metrics for the demo server.
package webmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var renderTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pagehead_render_total",
	Help: "Head metadata renders by lookup result.",
}, []string{"result"})

// ObserveRender records one head-tag render attempt.
func ObserveRender(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	renderTotal.WithLabelValues(result).Inc()
}

// Handler serves the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
