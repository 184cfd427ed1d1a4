// SPDX-License-Identifier: MIT

package core

import "fmt"

// AddNode inserts the node name at (lat, lon).
//
// If name already exists the coordinates are replaced and the node keeps its
// index; edges already stored keep the weights computed at their insertion.
// Under WithStrictNodes a repeated name returns ErrDuplicateNode instead.
// Coordinates are not range-checked.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string, lat, lon float64) error {
	if name == "" {
		return ErrEmptyNodeName
	}

	if i, exists := g.index[name]; exists {
		if g.strictNodes {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		g.logger.Debug("node overwritten",
			"node", name,
			"old_lat", g.nodes[i].Lat, "old_lon", g.nodes[i].Lon,
			"lat", lat, "lon", lon)
		g.nodes[i] = Node{Name: name, Lat: lat, Lon: lon}

		return nil
	}

	g.index[name] = len(g.nodes)
	g.nodes = append(g.nodes, Node{Name: name, Lat: lat, Lon: lon})
	g.arcs = append(g.arcs, nil)

	return nil
}

// HasNode reports whether name was added.
// Complexity: O(1).
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]

	return ok
}

// Node returns the node stored under name.
// Complexity: O(1).
func (g *Graph) Node(name string) (Node, error) {
	i, ok := g.index[name]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return g.nodes[i], nil
}

// Nodes returns a copy of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Index returns the dense index of name, assigned in insertion order.
// Complexity: O(1).
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.index[name]

	return i, ok
}

// NameAt returns the name of the node with index i. It panics if i is out of
// range, like a slice access.
func (g *Graph) NameAt(i int) string { return g.nodes[i].Name }
