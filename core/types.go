// SPDX-License-Identifier: MIT
//
// Package core defines Node, Edge, Arc, Graph, the functional options and the
// sentinel errors, plus the NewGraph constructor.
package core

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/geograph/geo"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates that a node name is the empty string.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrUnknownNode indicates an operation referenced a node never added.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrDuplicateNode indicates AddNode was called twice for one name on a strict graph.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrInvalidWeight indicates a negative or NaN edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrEdgeNotFound indicates that no arc exists between the requested endpoints.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Node is a named geographic location. Nodes are values; the Graph owns the
// canonical copy.
type Node struct {
	// Name uniquely identifies the node within its Graph.
	Name string

	// Lat is the latitude in signed decimal degrees.
	Lat float64

	// Lon is the longitude in signed decimal degrees.
	Lon float64
}

// Coordinate returns the node position as a geo.Coordinate.
func (n Node) Coordinate() geo.Coordinate {
	return geo.Coordinate{Lat: n.Lat, Lon: n.Lon}
}

// Edge is one directed arc reported by name.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Arc is one outgoing arc in index form: the target node index and the weight.
type Arc struct {
	To     int
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithStrictNodes makes AddNode reject names that already exist.
func WithStrictNodes() GraphOption {
	return func(g *Graph) { g.strictNodes = true }
}

// WithDefaultDirected makes new edges one-way unless overridden per edge.
func WithDefaultDirected() GraphOption {
	return func(g *Graph) { g.defaultDirected = true }
}

// WithLogger sets the logger used for debug records. A nil logger is ignored.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight    float64
	hasWeight bool
	directed  bool
}

// WithWeight sets an explicit weight. Without it the weight is the
// great-circle distance between the endpoints in kilometers.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) {
		c.weight = w
		c.hasWeight = true
	}
}

// WithDirected overrides the graph default orientation for one edge.
// WithDirected(false) inserts both from→to and to→from.
func WithDirected(directed bool) EdgeOption {
	return func(c *edgeConfig) { c.directed = directed }
}

// Graph is the node and adjacency store.
//
// nodes[i] is the node with index i, index maps names back to indices and
// arcs[i] lists the outgoing arcs of node i in insertion order.
type Graph struct {
	// Configuration flags
	strictNodes     bool
	defaultDirected bool

	logger *slog.Logger

	// Storage
	nodes     []Node
	index     map[string]int
	arcs      [][]Arc
	edgeCount int
}

// NewGraph creates an empty Graph. By default nodes may be overwritten and
// edges are bidirectional.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:  make(map[string]int),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
