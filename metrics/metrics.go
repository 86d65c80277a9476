// Package metrics defines the Prometheus collectors exported by socialgraph.
//
// Collectors live on a Metrics value bound to one registry, so the server can
// use the default registry while tests use an isolated one.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "socialgraph"

// Metrics groups every collector.
type Metrics struct {
	gatherer prometheus.Gatherer

	AlgorithmRuns     *prometheus.CounterVec
	AlgorithmDuration *prometheus.HistogramVec
	Mutations         *prometheus.CounterVec
	GraphNodes        prometheus.Gauge
	GraphEdges        prometheus.Gauge
	Loads             *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	RateLimited       prometheus.Counter
}

// New registers the collectors on reg. reg should also be a Gatherer
// (*prometheus.Registry is) for Handler to serve it.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	m := &Metrics{
		AlgorithmRuns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "algorithm_runs_total",
			Help:      "Algorithm invocations, labelled by algorithm and result.",
		}, []string{"algorithm", "result"}),

		AlgorithmDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "algorithm_duration_seconds",
			Help:      "Algorithm wall time in seconds.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		}, []string{"algorithm"}),

		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Graph mutations, labelled by operation and outcome.",
		}, []string{"op", "outcome"}),

		GraphNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Current number of users in the graph.",
		}),

		GraphEdges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Current number of friendships in the graph.",
		}),

		Loads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_loads_total",
			Help:      "Dataset (re)loads, labelled by result.",
		}, []string{"result"}),

		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests, labelled by route, method and status code.",
		}, []string{"route", "method", "code"}),

		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}

	return m
}

// NewIsolated returns Metrics on a fresh registry.
func NewIsolated() *Metrics { return New(prometheus.NewRegistry()) }

// ObserveAlgorithm records one run. err == nil counts as "ok".
func (m *Metrics) ObserveAlgorithm(algorithm string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.AlgorithmRuns.WithLabelValues(algorithm, result).Inc()
	m.AlgorithmDuration.WithLabelValues(algorithm).Observe(time.Since(start).Seconds())
}

// ObserveMutation counts one mutation attempt.
func (m *Metrics) ObserveMutation(op, outcome string) {
	m.Mutations.WithLabelValues(op, outcome).Inc()
}

// SetGraphSize updates the size gauges.
func (m *Metrics) SetGraphSize(nodes, edges int) {
	m.GraphNodes.Set(float64(nodes))
	m.GraphEdges.Set(float64(edges))
}

// Handler serves the registry this Metrics was built on, falling back to
// the default gatherer.
func (m *Metrics) Handler() http.Handler {
	if m.gatherer == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
