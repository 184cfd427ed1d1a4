// SPDX-License-Identifier: MIT
//
// Package bfs provides breadth-first search over a core.Graph, returning
// fewest-hop distances, parent links and the visit order.
//
// Weights are ignored except that arcs of infinite weight are treated as
// absent, the same way package dijkstra treats them, so both searches agree
// on which nodes are reachable.
//
// Determinism
//
//	Neighbors are enqueued in arc insertion order, so the visit sequence and
//	the parent tree are reproducible for a given graph.
//
// Complexity (V = nodes, E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "Jakarta", bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrUnknownNode, ErrOptionViolation, ctx errors or OnVisit errors
//	}
//	hops, ok := res.PathTo("Semarang")
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per dequeued node.
//   - WithMaxDepth(d):         do not enqueue nodes deeper than d (d > 0).
//   - WithFilterNeighbor(fn):  skip arcs for which fn(curr, next) is false.
//   - WithOnEnqueue(fn), WithOnDequeue(fn), WithOnVisit(fn): traversal hooks.
package bfs
