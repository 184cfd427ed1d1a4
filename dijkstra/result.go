// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geograph/core"
)

// Path is one shortest route: node names from source to destination
// inclusive and the accumulated weight.
type Path struct {
	Nodes    []string
	Distance float64
}

// Hops returns the number of arcs on the path.
func (p Path) Hops() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// Result holds the output of Compute. Lookups accept any node that existed
// when the search ran; nodes added afterwards are reported as unknown.
type Result struct {
	g      *core.Graph
	source int
	dist   []float64
	prev   []int
	stats  SearchStats
}

// Source returns the name of the search source.
func (r *Result) Source() string { return r.g.NameAt(r.source) }

// Stats returns the statistics of the search that produced r.
func (r *Result) Stats() SearchStats { return r.stats }

// Distance returns the shortest distance from the source to name, or +Inf
// when name is unreachable.
func (r *Result) Distance(name string) (float64, error) {
	i, err := r.lookup(name)
	if err != nil {
		return 0, err
	}

	return r.dist[i], nil
}

// Reachable reports whether name is known and has a finite distance.
func (r *Result) Reachable(name string) bool {
	i, err := r.lookup(name)

	return err == nil && !math.IsInf(r.dist[i], 1)
}

// Predecessor returns the node preceding name on its shortest path. ok is
// false for the source and for unreachable nodes.
func (r *Result) Predecessor(name string) (pred string, ok bool, err error) {
	i, err := r.lookup(name)
	if err != nil {
		return "", false, err
	}
	if r.prev[i] < 0 {
		return "", false, nil
	}

	return r.g.NameAt(r.prev[i]), true, nil
}

// PathTo reconstructs the shortest path from the source to name by walking
// predecessors backwards. ok is false when name is unreachable.
// Complexity: O(path length).
func (r *Result) PathTo(name string) (path Path, ok bool, err error) {
	i, err := r.lookup(name)
	if err != nil {
		return Path{}, false, err
	}
	if math.IsInf(r.dist[i], 1) {
		return Path{}, false, nil
	}

	// build reversed path
	var nodes []string
	for cur := i; cur >= 0; cur = r.prev[cur] {
		nodes = append(nodes, r.g.NameAt(cur))
	}
	// reverse to get source → name
	for a, b := 0, len(nodes)-1; a < b; a, b = a+1, b-1 {
		nodes[a], nodes[b] = nodes[b], nodes[a]
	}

	return Path{Nodes: nodes, Distance: r.dist[i]}, true, nil
}

// Distances returns the distance of every node by name, +Inf if unreachable.
func (r *Result) Distances() map[string]float64 {
	out := make(map[string]float64, len(r.dist))
	for i, d := range r.dist {
		out[r.g.NameAt(i)] = d
	}

	return out
}

// Predecessors returns the predecessor of every node by name. The source and
// unreachable nodes map to "".
func (r *Result) Predecessors() map[string]string {
	out := make(map[string]string, len(r.prev))
	for i, p := range r.prev {
		name := r.g.NameAt(i)
		if p < 0 {
			out[name] = ""
			continue
		}
		out[name] = r.g.NameAt(p)
	}

	return out
}

func (r *Result) lookup(name string) (int, error) {
	i, ok := r.g.Index(name)
	if !ok || i >= len(r.dist) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return i, nil
}
