package devserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Forum events counted by forum_devserver_events_total.
const (
	eventThreadCreated = "thread_created"
	eventThreadDeleted = "thread_deleted"
	eventPostCreated   = "post_created"
	eventWriteRejected = "write_rejected"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_devserver_http_requests_total",
			Help: "API requests by route pattern and status code.",
		},
		[]string{"method", "route", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forum_devserver_http_request_duration_seconds",
			Help:    "API request latency by route pattern.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 7),
		},
		[]string{"route"},
	)

	eventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_devserver_events_total",
			Help: "Forum writes applied or rejected by the store.",
		},
		[]string{"event"},
	)
)

func recordEvent(event string) {
	eventsTotal.WithLabelValues(event).Inc()
}

// MetricsMiddleware labels requests by chi route pattern, so /threads/1 and
// /threads/2 share a series.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}

		requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(code)).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
