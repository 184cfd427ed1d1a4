// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only policy getters and the Stats snapshot.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	StrictNodes     bool
	DefaultDirected bool

	NodeCount int
	ArcCount  int

	// SelfLoops counts arcs whose source and target are the same node.
	SelfLoops int
	// ParallelArcs counts arcs that repeat an earlier (from, to) pair.
	ParallelArcs int
	// Isolated counts nodes with neither outgoing nor incoming arcs.
	Isolated int
}

// StrictNodes reports whether AddNode rejects existing names.
func (g *Graph) StrictNodes() bool { return g.strictNodes }

// DefaultDirected reports whether new edges default to one-way.
func (g *Graph) DefaultDirected() bool { return g.defaultDirected }

// Stats scans the graph once and returns its summary.
// Complexity: O(V+E) time, O(V) extra space.
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		StrictNodes:     g.strictNodes,
		DefaultDirected: g.defaultDirected,
		NodeCount:       len(g.nodes),
		ArcCount:        g.edgeCount,
	}

	touched := make([]bool, len(g.nodes))
	seen := make(map[int]struct{})
	var a Arc
	for i, arcs := range g.arcs {
		if len(arcs) > 0 {
			touched[i] = true
		}
		clear(seen)
		for _, a = range arcs {
			touched[a.To] = true
			if a.To == i {
				stats.SelfLoops++
			}
			if _, dup := seen[a.To]; dup {
				stats.ParallelArcs++
				continue
			}
			seen[a.To] = struct{}{}
		}
	}
	for _, t := range touched {
		if !t {
			stats.Isolated++
		}
	}

	return stats
}
