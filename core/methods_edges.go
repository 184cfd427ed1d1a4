// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geograph/geo"
)

// AddEdge inserts an edge between two existing nodes.
//
// Both endpoints must have been added (ErrUnknownNode otherwise). Without
// WithWeight the weight is the Haversine distance between the endpoints,
// computed once now. Unless the edge is directed, the reverse arc to→from is
// stored with the same weight. Parallel edges and self-loops are kept.
//
// Validation order: empty name, unknown endpoint, invalid weight. A derived
// weight that is not finite (an endpoint with NaN or infinite coordinates)
// is invalid too. Nothing is stored when an error is returned.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyNodeName
	}

	// 2) Endpoints must exist
	fi, ok := g.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	ti, ok := g.index[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}

	// 3) Resolve per-edge options against graph defaults
	cfg := edgeConfig{directed: g.defaultDirected}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 4) Weight: explicit and validated, or derived from coordinates
	w := cfg.weight
	if cfg.hasWeight {
		if math.IsNaN(w) || w < 0 {
			return fmt.Errorf("%w: %s→%s weight=%g", ErrInvalidWeight, from, to, w)
		}
	} else {
		a, b := g.nodes[fi], g.nodes[ti]
		w = geo.Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
		// Non-finite coordinates yield NaN
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: %s→%s derived weight=%g", ErrInvalidWeight, from, to, w)
		}
	}

	// 5) Append the forward arc, then the mirror
	g.arcs[fi] = append(g.arcs[fi], Arc{To: ti, Weight: w})
	g.edgeCount++
	if !cfg.directed {
		g.arcs[ti] = append(g.arcs[ti], Arc{To: fi, Weight: w})
		g.edgeCount++
	}

	g.logger.Debug("edge added",
		"from", from, "to", to, "weight", w,
		"bidirectional", !cfg.directed, "derived", !cfg.hasWeight)

	return nil
}

// Neighbors returns the outgoing edges of name in insertion order. A node
// without outgoing edges yields an empty, non-nil slice.
// Complexity: O(d).
func (g *Graph) Neighbors(name string) ([]Edge, error) {
	i, ok := g.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	out := make([]Edge, 0, len(g.arcs[i]))
	for _, a := range g.arcs[i] {
		out = append(out, Edge{From: name, To: g.nodes[a.To].Name, Weight: a.Weight})
	}

	return out, nil
}

// Weight returns the weight of the most recently inserted from→to arc.
// Complexity: O(d) in the out-degree of from.
func (g *Graph) Weight(from, to string) (float64, error) {
	fi, ok := g.index[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	ti, ok := g.index[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}

	arcs := g.arcs[fi]
	for k := len(arcs) - 1; k >= 0; k-- {
		if arcs[k].To == ti {
			return arcs[k].Weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
}

// Edges returns every stored arc, grouped by source in node insertion order
// and by insertion order within a source. A bidirectional edge appears twice.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for i, arcs := range g.arcs {
		from := g.nodes[i].Name
		for _, a := range arcs {
			out = append(out, Edge{From: from, To: g.nodes[a.To].Name, Weight: a.Weight})
		}
	}

	return out
}

// EdgeCount returns the number of stored directed arcs.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Arcs returns the outgoing arcs of node index i. The slice is shared with
// the graph and must not be modified.
func (g *Graph) Arcs(i int) []Arc { return g.arcs[i] }
