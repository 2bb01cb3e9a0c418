package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dishlens_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"route", "method", "status"},
	)

	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dishlens_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	calorieCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dishlens_calorie_calculations_total",
			Help: "Maintenance calorie calculations by outcome",
		},
		[]string{"outcome"},
	)

	dishLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dishlens_dish_lookups_total",
			Help: "Dish detail lookups by outcome",
		},
		[]string{"outcome"},
	)
)

// MetricsMiddleware records request count and latency per route template
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		requestDuration.WithLabelValues(route, c.Request.Method, status).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(route, c.Request.Method, status).Inc()
	}
}
