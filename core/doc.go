// SPDX-License-Identifier: MIT
//
// Package core provides the in-memory geographic Graph used by the shortest-path
// algorithms in this module.
//
// A Graph G = (V, E) stores:
//
//   - Nodes identified by a unique, non-empty name and carrying a latitude and
//     longitude in signed decimal degrees.
//   - Directed arcs From→To with a non-negative float64 weight. A bidirectional
//     insertion stores two arcs with the same weight.
//   - Per-node adjacency as an ordered slice (insertion order), so iteration over
//     neighbors is deterministic.
//
// Weights:
//
//   - AddEdge(from, to, WithWeight(w)) stores w as-is after validation.
//   - AddEdge(from, to) without a weight derives it once from the endpoint
//     coordinates via geo.Haversine (kilometers). It is never recomputed, even if a
//     node is later overwritten with new coordinates.
//   - Negative and NaN weights are rejected with ErrInvalidWeight. +Inf is accepted
//     and makes the arc impassable for Dijkstra.
//
// Configuration Options (GraphOption):
//
//	– WithStrictNodes()
//	    AddNode on an existing name returns ErrDuplicateNode instead of
//	    overwriting the coordinates.
//
//	– WithDefaultDirected()
//	    New edges are one-way unless WithDirected(false) is passed per edge.
//	    The default is bidirectional.
//
//	– WithLogger(*slog.Logger)
//	    Debug records for node overwrites and edge insertions. Silent by default.
//
// Core Methods:
//
//	// Build
//	AddNode(name string, lat, lon float64) error              // O(1) amortized
//	AddEdge(from, to string, opts ...EdgeOption) error        // O(1) amortized
//
//	// Query
//	HasNode(name string) bool                                 // O(1)
//	Node(name string) (Node, error)                           // O(1)
//	Neighbors(name string) ([]Edge, error)                    // O(d)
//	Weight(from, to string) (float64, error)                  // O(d)
//	Nodes() []Node                                            // O(V), insertion order
//	Edges() []Edge                                            // O(V+E)
//	NodeCount() int / EdgeCount() int                         // O(1)
//	Clone() *Graph                                            // O(V+E)
//
//	// Index view for algorithms
//	Index(name string) (int, bool)                            // O(1)
//	NameAt(i int) string                                      // O(1)
//	Arcs(i int) []Arc                                         // O(1), shared slice
//
// Errors:
//
//	ErrEmptyNodeName  – zero-length node name
//	ErrUnknownNode    – an edge or query references a name never added
//	ErrDuplicateNode  – AddNode on an existing name under WithStrictNodes
//	ErrInvalidWeight  – negative or NaN explicit weight
//	ErrEdgeNotFound   – Weight(from, to) with no from→to arc
//
// Concurrency:
//
//	Graph has no internal locking. Any number of goroutines may read an
//	unmutated Graph concurrently; mutation must be serialized by the caller and
//	must not overlap with queries.
package core
