// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

// Package observability holds the Prometheus metrics for the outside service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the Prometheus counters and histograms for page rendering and
// upstream provider traffic. Every instance carries its own registry so the
// exposition endpoint always serves the collectors it was built with.
type Metrics struct {
	Registry *prometheus.Registry

	PageRenders  *prometheus.CounterVec   // labels: page, outcome={success,error}
	SignIns      *prometheus.CounterVec   // labels: outcome={begun,verified,rejected}
	UpstreamReqs *prometheus.CounterVec   // labels: provider={airnow,openmeteo}, outcome={success,error}
	UpstreamTime *prometheus.HistogramVec // labels: provider
}

// New creates the service metrics along with the process and Go runtime
// collectors.
func New() *Metrics {
	m := newMetrics()
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// NewForTesting creates Metrics without the runtime collectors, keeping test
// scrapes down to the service's own series.
func NewForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outside",
			Name:      "page_renders_total",
			Help:      "Rendered pages by page name and outcome.",
		}, []string{"page", "outcome"}),
		SignIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outside",
			Name:      "sign_ins_total",
			Help:      "One-time-password sign in attempts by outcome.",
		}, []string{"outcome"}),
		UpstreamReqs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outside",
			Name:      "upstream_requests_total",
			Help:      "Upstream provider requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		UpstreamTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "outside",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
	}
	m.Registry.MustRegister(m.PageRenders, m.SignIns, m.UpstreamReqs, m.UpstreamTime)
	return m
}
