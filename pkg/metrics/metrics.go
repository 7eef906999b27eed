// Package metrics exposes walk and drift statistics as Prometheus metrics.
//
// The Collector is a trace logger: attach it to a walker next to (or instead
// of) a file logger and it counts what the walker does. Because featwalk is a
// one-shot tool the metrics are exported through a node_exporter textfile
// rather than an HTTP endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/featwalk/featwalk/pkg/drift"
	"github.com/featwalk/featwalk/pkg/log"
)

const namespace = "featwalk"

// Collector counts walk trace events and records drift results.
type Collector struct {
	registry *prometheus.Registry

	nodes       *prometheus.CounterVec
	skipped     *prometheus.CounterVec
	occurrences *prometheus.CounterVec
	walkErrors  *prometheus.CounterVec
	duration    *prometheus.HistogramVec

	missing       *prometheus.GaugeVec
	publishedOnly *prometheus.GaugeVec
	matched       *prometheus.GaugeVec
}

// New creates a Collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		nodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_total",
			Help:      "Nodes dequeued by the walker, by action.",
		}, []string{"group", "action"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_skipped_total",
			Help:      "Nodes skipped by the walker, by reason.",
		}, []string{"group", "reason"}),
		occurrences: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "occurrences_total",
			Help:      "Feature occurrences emitted.",
		}, []string{"group"}),
		walkErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "walk_errors_total",
			Help:      "Walks aborted by an error.",
		}, []string{"group"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "walk_duration_seconds",
			Help:      "Duration of completed walks.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"group"}),
		missing: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "drift_missing",
			Help:      "Device features missing from the published catalog.",
		}, []string{"group"}),
		publishedOnly: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "drift_published_only",
			Help:      "Published identifiers not found on the device.",
		}, []string{"group"}),
		matched: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "drift_matched",
			Help:      "Device features present in the published catalog.",
		}, []string{"group"}),
	}
	c.registry.MustRegister(
		c.nodes, c.skipped, c.occurrences, c.walkErrors, c.duration,
		c.missing, c.publishedOnly, c.matched,
	)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Log implements log.Logger.
func (c *Collector) Log(e log.Event) {
	switch e.Action {
	case log.ActionExpand, log.ActionSkip, log.ActionEmit:
		c.nodes.WithLabelValues(e.Group, e.Action.String()).Inc()
	}

	switch e.Action {
	case log.ActionSkip:
		c.skipped.WithLabelValues(e.Group, e.Reason.String()).Inc()
	case log.ActionEmit:
		c.occurrences.WithLabelValues(e.Group).Add(float64(e.Count))
	case log.ActionWalkEnd:
		c.duration.WithLabelValues(e.Group).Observe(e.Duration.Seconds())
	case log.ActionError:
		c.walkErrors.WithLabelValues(e.Group).Inc()
	}
}

// ObserveDrift records the per-group results of a drift report.
func (c *Collector) ObserveDrift(r *drift.Report) {
	for _, g := range r.Groups {
		c.missing.WithLabelValues(g.Group).Set(float64(len(g.Missing)))
		c.publishedOnly.WithLabelValues(g.Group).Set(float64(len(g.PublishedOnly)))
		c.matched.WithLabelValues(g.Group).Set(float64(g.Matched))
	}
}

// WriteTextfile writes every metric to path in the text exposition format,
// atomically, for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

var _ log.Logger = (*Collector)(nil)
