package middleware

import (
	"net/http"
	"time"

	"github.com/dtroode/gucfolio/internal/metrics"
)

// Metrics records request counts and latencies per route.
type Metrics struct {
	metrics *metrics.Metrics
}

func NewMetrics(m *metrics.Metrics) *Metrics {
	return &Metrics{metrics: m}
}

func (m *Metrics) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		m.metrics.ObserveRequest(r.Method, route(r), rec.status, time.Since(start))
	})
}
