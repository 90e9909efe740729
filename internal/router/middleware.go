package router

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/payroll-zero/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware stores the public base URL of the API without a trailing
// slash. Links in responses are built from it.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	base := strings.TrimSuffix(url.String(), "/")

	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), base)
		c.Next()
	}
}

const metricsNamespace = "payroll_zero"

// unmatchedRoute is the route label for requests that no handler matched.
// Using the raw path would let clients create arbitrary label values.
const unmatchedRoute = "unmatched"

var (
	requestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by status code, method and route.",
	}, []string{"code", "method", "route"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latencies in seconds by status code, method and route.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"code", "method", "route"})
)

var collectors = []prometheus.Collector{requestsInFlight, requestCount, requestDuration}

// registerPrometheusMetrics adds the HTTP metrics to the default registry.
// On failure, everything registered so far is removed again.
func registerPrometheusMetrics() error {
	for i, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			for _, registered := range collectors[:i] {
				prometheus.Unregister(registered)
			}
			return fmt.Errorf("registering HTTP metrics: %w", err)
		}
	}

	return nil
}

// unregisterPrometheusMetrics removes the HTTP metrics so that Config can
// run again in the same process.
func unregisterPrometheusMetrics() bool {
	ok := true
	for _, c := range collectors {
		ok = prometheus.Unregister(c) && ok
	}

	return ok
}

// MetricsMiddleware records the HTTP metrics. Requests are labeled with the
// route template, e.g. /v1/employees/:id, not with the requested path.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		labels := prometheus.Labels{
			"code":   strconv.Itoa(c.Writer.Status()),
			"method": c.Request.Method,
			"route":  route,
		}

		requestDuration.With(labels).Observe(time.Since(start).Seconds())
		requestCount.With(labels).Inc()
	}
}
