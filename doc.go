// SPDX-License-Identifier: MIT
//
// Package geograph computes shortest routes over graphs of geographic
// locations.
//
// What is geograph?
//
//	An in-memory library that brings together:
//		• Great-circle distance: Haversine over a 6371 km sphere (geo)
//		• A graph store of named lat/lon nodes and weighted arcs (core)
//		• Single-source shortest paths: lazy-deletion Dijkstra (dijkstra)
//		• Fewest-hop search over the same graph (bfs)
//		• Reproducible random and chain fixtures (builder)
//		• A configured facade with slog logging, Prometheus metrics and
//		  OpenTelemetry spans (planner, config, logging, metrics)
//
// Edges either carry an explicit non-negative weight or get the great-circle
// distance between their endpoints in kilometers, computed once on insertion.
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddNode("Jakarta", -6.2088, 106.8456)
//	_ = g.AddNode("Bandung", -6.9175, 107.6191)
//	_ = g.AddEdge("Jakarta", "Bandung")
//	path, ok, err := dijkstra.ShortestPath(g, "Jakarta", "Bandung")
//
// The graph is not locked internally: build it first, then query it from as
// many goroutines as needed.
//
//	go get github.com/katalvlaran/geograph
package geograph
