// Package metrics exposes Prometheus instruments for the scoring API.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/DjordjeVuckovic/docseg/internal/apperr"
)

var (
	// RequestsTotal counts requests by route template and response status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docseg_http_requests_total",
		Help: "Total number of scoring API requests",
	}, []string{"route", "status"})

	// GlobalScore records the global score of every matched request.
	GlobalScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "docseg_global_score",
		Help:    "Global IoU score returned by the scoring API",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})

	// MatchDuration measures the time spent building and solving one matching.
	MatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "docseg_match_duration_seconds",
		Help:    "Time spent matching span collections",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	// CollectionSize records n, the padded size of each matching.
	CollectionSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "docseg_collection_size",
		Help:    "Padded number of spans per matching",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)

// ObserveMatch records one solved matching.
func ObserveMatch(n int, score float64, elapsed time.Duration) {
	CollectionSize.Observe(float64(n))
	GlobalScore.Observe(score)
	MatchDuration.Observe(elapsed.Seconds())
}

// Middleware counts every request under its route template.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if err != nil {
				status = apperr.StatusCode(err)
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
			return err
		}
	}
}
