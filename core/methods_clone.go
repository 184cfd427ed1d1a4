// SPDX-License-Identifier: MIT

package core

// Clone returns a deep copy of g: nodes, indices, arcs and options. The
// logger is shared. Use it to take a snapshot before mutating a graph that
// other goroutines are still querying.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		strictNodes:     g.strictNodes,
		defaultDirected: g.defaultDirected,
		logger:          g.logger,
		nodes:           make([]Node, len(g.nodes)),
		index:           make(map[string]int, len(g.index)),
		arcs:            make([][]Arc, len(g.arcs)),
		edgeCount:       g.edgeCount,
	}
	copy(c.nodes, g.nodes)
	for name, i := range g.index {
		c.index[name] = i
	}
	for i, arcs := range g.arcs {
		if arcs == nil {
			continue
		}
		c.arcs[i] = make([]Arc, len(arcs))
		copy(c.arcs[i], arcs)
	}

	return c
}
