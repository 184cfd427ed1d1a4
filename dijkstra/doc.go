// SPDX-License-Identifier: MIT
//
// Package dijkstra computes single-source shortest paths over a core.Graph with
// non-negative edge weights.
//
// Overview:
//
//   - Compute runs Dijkstra's algorithm from one source and returns a Result with
//     the distance to every node (+Inf when unreachable) and a predecessor tree.
//   - ShortestPath runs Compute and reconstructs one source→destination path, or
//     reports that none exists.
//   - The frontier is a binary min-heap (container/heap) with lazy deletion: a
//     shorter distance pushes a new entry and the outdated one is skipped when
//     popped. No decrease-key is needed.
//   - All per-run state (distances, predecessors, heap) is allocated fresh on each
//     call and indexed by the dense node index of core.Graph. Predecessors are
//     stored as indices (-1 = none), so path reconstruction never follows live
//     references.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holding at most one entry per successful relaxation.
//
// Options:
//
//   - WithMaxDistance(d):      nodes farther than d stay unreachable (d ≥ 0).
//   - WithInfEdgeThreshold(t): arcs with weight ≥ t are skipped (t > 0).
//   - WithContext(ctx):        cancellation, checked once per settled node.
//   - WithLogger(l):           debug record per search.
//   - WithObserver(o):         SearchStats callback, e.g. the metrics package.
//   - WithTracerProvider(tp):  OpenTelemetry provider for the "dijkstra.Compute" span.
//     The global provider is used when unset.
//
// Errors (sentinel):
//
//   - ErrNilGraph        the graph pointer is nil.
//   - ErrEmptySource     the source name is empty.
//   - ErrUnknownNode     source or destination was never added (same value as
//     core.ErrUnknownNode).
//   - ErrBadMaxDistance  WithMaxDistance received a negative or NaN value.
//   - ErrBadInfThreshold WithInfEdgeThreshold received a value ≤ 0 or NaN.
//
// An unreachable destination is not an error: ShortestPath returns ok == false.
//
// Thread safety:
//
//   - Compute only reads the graph, so concurrent searches on one unmutated graph
//     are safe. Mutating the graph during a search is not supported.
package dijkstra
