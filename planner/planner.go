// SPDX-License-Identifier: MIT
//
// Package planner ties a core.Graph to the search engines, configured from
// config.Config, logging through slog, counting through Prometheus and
// tracing through OpenTelemetry.
//
// A Planner is not safe for concurrent mutation. Queries may run
// concurrently once the graph is fully built.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/geograph/bfs"
	"github.com/katalvlaran/geograph/config"
	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/dijkstra"
	"github.com/katalvlaran/geograph/logging"
	"github.com/katalvlaran/geograph/metrics"
)

// Planner owns one graph and answers shortest-path queries over it.
type Planner struct {
	cfg       config.Config
	graph     *core.Graph
	logger    *slog.Logger
	collector *metrics.Collector
	tracer    trace.TracerProvider
	reg       prometheus.Registerer
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger replaces the logger built from cfg.Log.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithRegisterer sets where metrics are registered when cfg.Metrics.Enabled.
// Default: prometheus.DefaultRegisterer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(p *Planner) { p.reg = reg }
}

// WithTracerProvider sets the tracer provider for searches. Default: the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *Planner) { p.tracer = tp }
}

// New validates cfg and returns an empty Planner.
func New(cfg config.Config, opts ...Option) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Planner{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	}

	if cfg.Metrics.Enabled {
		reg := p.reg
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		c, err := metrics.New(cfg.Metrics.Namespace, reg)
		if err != nil {
			return nil, fmt.Errorf("planner: %w", err)
		}
		p.collector = c
	}

	gopts := []core.GraphOption{core.WithLogger(p.logger)}
	if cfg.Graph.StrictNodes {
		gopts = append(gopts, core.WithStrictNodes())
	}
	if cfg.Graph.DefaultDirected {
		gopts = append(gopts, core.WithDefaultDirected())
	}
	p.graph = core.NewGraph(gopts...)

	return p, nil
}

// Graph returns the underlying graph. Mutating it directly bypasses the
// size gauges but is otherwise allowed between queries.
func (p *Planner) Graph() *core.Graph { return p.graph }

// Snapshot returns a deep copy of the graph for callers that keep building
// while a copy is queried elsewhere.
func (p *Planner) Snapshot() *core.Graph { return p.graph.Clone() }

// AddNode inserts or overwrites a node.
func (p *Planner) AddNode(name string, lat, lon float64) error {
	if err := p.graph.AddNode(name, lat, lon); err != nil {
		return err
	}
	p.observeGraph()

	return nil
}

// AddEdge connects two existing nodes. A nil weight means great-circle
// distance in kilometers. bidirectional overrides cfg.Graph.DefaultDirected.
func (p *Planner) AddEdge(from, to string, weight *float64, bidirectional bool) error {
	opts := []core.EdgeOption{core.WithDirected(!bidirectional)}
	if weight != nil {
		opts = append(opts, core.WithWeight(*weight))
	}
	if err := p.graph.AddEdge(from, to, opts...); err != nil {
		return err
	}
	p.observeGraph()

	return nil
}

// ShortestPath returns the shortest path from source to destination. ok is
// false when destination is unreachable.
func (p *Planner) ShortestPath(ctx context.Context, source, destination string) (dijkstra.Path, bool, error) {
	path, ok, err := dijkstra.ShortestPath(p.graph, source, destination, p.searchOptions(ctx)...)
	if err != nil {
		p.searchFailed(source, err)
		return dijkstra.Path{}, false, err
	}
	p.logger.Debug("planner: shortest path",
		"source", source, "destination", destination,
		"found", ok, "distance", path.Distance, "hops", path.Hops())

	return path, ok, nil
}

// Compute returns the distance and predecessor of every node as seen from
// source. Unreachable nodes have distance +Inf and predecessor "".
func (p *Planner) Compute(ctx context.Context, source string) (map[string]float64, map[string]string, error) {
	res, err := p.Search(ctx, source)
	if err != nil {
		return nil, nil, err
	}

	return res.Distances(), res.Predecessors(), nil
}

// Search runs one single-source search and returns the full result.
func (p *Planner) Search(ctx context.Context, source string) (*dijkstra.Result, error) {
	res, err := dijkstra.Compute(p.graph, source, p.searchOptions(ctx)...)
	if err != nil {
		p.searchFailed(source, err)
		return nil, err
	}

	return res, nil
}

// FewestHops returns the route with the fewest arcs, ignoring weights.
func (p *Planner) FewestHops(ctx context.Context, source, destination string) ([]string, bool, error) {
	if p.graph.HasNode(source) && !p.graph.HasNode(destination) {
		err := fmt.Errorf("%w: destination %q", core.ErrUnknownNode, destination)
		p.searchFailed(source, err)
		return nil, false, err
	}
	res, err := bfs.BFS(p.graph, source, bfs.WithContext(ctx))
	if err != nil {
		p.searchFailed(source, err)
		return nil, false, err
	}
	path, ok := res.PathTo(destination)

	return path, ok, nil
}

// Stats returns a graph summary and refreshes the size gauges.
func (p *Planner) Stats() core.GraphStats {
	s := p.graph.Stats()
	if p.collector != nil {
		p.collector.ObserveGraph(s)
	}

	return s
}

func (p *Planner) searchOptions(ctx context.Context) []dijkstra.Option {
	opts := []dijkstra.Option{
		dijkstra.WithContext(ctx),
		dijkstra.WithLogger(p.logger),
	}
	if d := p.cfg.Search.MaxDistance; d > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(d))
	}
	if t := p.cfg.Search.InfEdgeThreshold; t > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(t))
	}
	if p.tracer != nil {
		opts = append(opts, dijkstra.WithTracerProvider(p.tracer))
	}
	if p.collector != nil {
		opts = append(opts, dijkstra.WithObserver(p.collector))
	}

	return opts
}

func (p *Planner) searchFailed(source string, err error) {
	p.logger.Warn("planner: search failed", "source", source, "error", err)
	if p.collector != nil {
		p.collector.SearchFailed(err)
	}
}

func (p *Planner) observeGraph() {
	if p.collector == nil {
		return
	}
	p.collector.ObserveGraph(core.GraphStats{
		NodeCount: p.graph.NodeCount(),
		ArcCount:  p.graph.EdgeCount(),
	})
}
