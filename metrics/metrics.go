// SPDX-License-Identifier: MIT
//
// Package metrics exports search and graph statistics to Prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/dijkstra"
)

const (
	subsystemSearch = "search"
	subsystemGraph  = "graph"
)

// Collector records dijkstra searches and graph size. It implements
// dijkstra.Observer.
type Collector struct {
	searches       prometheus.Counter
	searchErrors   *prometheus.CounterVec
	searchDuration prometheus.Histogram
	settled        prometheus.Counter
	relaxed        prometheus.Counter
	stale          prometheus.Counter
	reached        prometheus.Histogram

	graphNodes prometheus.Gauge
	graphArcs  prometheus.Gauge
}

var _ dijkstra.Observer = (*Collector)(nil)

// New creates a Collector and registers it on reg.
func New(namespace string, reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, errors.New("metrics: nil registerer")
	}

	c := &Collector{
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemSearch,
			Name:      "total",
			Help:      "Total completed shortest-path searches",
		}),
		searchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemSearch,
			Name:      "errors_total",
			Help:      "Total failed shortest-path searches",
		}, []string{"reason"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystemSearch,
			Name:      "duration_seconds",
			Help:      "Shortest-path search latency in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		settled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemSearch,
			Name:      "nodes_settled_total",
			Help:      "Total nodes settled across searches",
		}),
		relaxed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemSearch,
			Name:      "arcs_relaxed_total",
			Help:      "Total arcs that improved a tentative distance",
		}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemSearch,
			Name:      "stale_entries_total",
			Help:      "Total outdated heap entries skipped",
		}),
		reached: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystemSearch,
			Name:      "reached_nodes",
			Help:      "Nodes reachable from the source per search",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 7),
		}),
		graphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystemGraph,
			Name:      "nodes",
			Help:      "Nodes currently stored",
		}),
		graphArcs: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystemGraph,
			Name:      "arcs",
			Help:      "Directed arcs currently stored",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.searches, c.searchErrors, c.searchDuration,
		c.settled, c.relaxed, c.stale, c.reached,
		c.graphNodes, c.graphArcs,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// ObserveSearch records one successful search.
func (c *Collector) ObserveSearch(s dijkstra.SearchStats) {
	c.searches.Inc()
	c.searchDuration.Observe(s.Elapsed.Seconds())
	c.settled.Add(float64(s.Settled))
	c.relaxed.Add(float64(s.Relaxed))
	c.stale.Add(float64(s.Stale))
	c.reached.Observe(float64(s.Reached))
}

// SearchFailed counts a failed search under the reason derived from err.
func (c *Collector) SearchFailed(err error) {
	c.searchErrors.WithLabelValues(Reason(err)).Inc()
}

// ObserveGraph sets the graph size gauges.
func (c *Collector) ObserveGraph(s core.GraphStats) {
	c.graphNodes.Set(float64(s.NodeCount))
	c.graphArcs.Set(float64(s.ArcCount))
}

// Reason maps a search error to a low-cardinality label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, dijkstra.ErrUnknownNode):
		return "unknown_node"
	case errors.Is(err, dijkstra.ErrEmptySource):
		return "empty_source"
	case errors.Is(err, dijkstra.ErrNilGraph):
		return "nil_graph"
	case errors.Is(err, dijkstra.ErrBadMaxDistance), errors.Is(err, dijkstra.ErrBadInfThreshold):
		return "bad_option"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "other"
	}
}
