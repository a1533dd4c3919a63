// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Tag resolution outcomes.
const (
	TagFound     = "found"
	TagCreated   = "created"
	TagConverged = "converged"
	TagFailed    = "failed"
)

// Reset mail outcomes.
const (
	MailSent   = "sent"
	MailFailed = "failed"
)

// Metrics holds application collectors. A nil *Metrics records nothing.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	TagResolutions  *prometheus.CounterVec
	ResetMails      *prometheus.CounterVec
	RevokedPruned   prometheus.Counter
}

// NewRegistry returns a registry with the Go and process collectors registered.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// NewMetrics creates and registers the application collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gucfolio_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gucfolio_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		TagResolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gucfolio_tag_resolutions_total",
				Help: "Tag find-or-create results by outcome",
			},
			[]string{"outcome"},
		),
		ResetMails: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gucfolio_reset_mails_total",
				Help: "Password reset mail dispatches by result",
			},
			[]string{"result"},
		),
		RevokedPruned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gucfolio_revoked_tokens_pruned_total",
				Help: "Expired revocation rows removed by the pruner",
			},
		),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.TagResolutions, m.ResetMails, m.RevokedPruned)

	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveTag(outcome string) {
	if m == nil {
		return
	}
	m.TagResolutions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveResetMail(result string) {
	if m == nil {
		return
	}
	m.ResetMails.WithLabelValues(result).Inc()
}

func (m *Metrics) ObservePruned(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.RevokedPruned.Add(float64(n))
}
