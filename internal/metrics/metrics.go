// Package metrics provides Prometheus instrumentation for the gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "swapi_gateway"

// Upstream call outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeNotFound    = "not_found"
	OutcomeRateLimited = "rate_limited"
	OutcomeStatus      = "status_error"
	OutcomeTransport   = "transport_error"
)

var (
	// HTTPRequestsTotal counts inbound requests by method, route pattern and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks inbound request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "route"})

	// UpstreamRequestsTotal counts calls to the upstream catalog.
	// mode is one of page, search or detail.
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests sent to the upstream catalog.",
	}, []string{"resource", "mode", "outcome"})

	// UpstreamRequestDuration tracks upstream call latency.
	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream catalog requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource", "mode"})

	// EnrichmentItems records how many detail lookups one list request fanned out to.
	EnrichmentItems = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "enrichment_items",
		Help:      "Number of records enriched per list request.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
	})
)
