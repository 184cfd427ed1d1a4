// SPDX-License-Identifier: MIT
//
// Package builder produces deterministic core.Graph fixtures for tests,
// benchmarks and examples.
//
// Constructors:
//
//   - RandomGeo(n, p, opts...)  n nodes scattered uniformly inside a bounding box,
//     each pair connected with independent probability p.
//   - Chain(nodes, opts...)     the given nodes joined in order by a path.
//
// Determinism:
//
//   - Node names come from the name prefix and the index: "N0", "N1", ...
//   - Coordinates are drawn first (index ascending), then edge trials run over
//     pairs i asc, j asc, so a fixed seed always yields the same graph.
//   - RandomGeo requires a random source (WithSeed or WithRand); there is no
//     hidden global RNG.
//
// Weights:
//
//   - Without WithWeightFn edges are auto-weighted by core (great-circle km).
//   - WithWeightFn(fn) sets an explicit weight fn(rng, km) per edge, e.g. to model
//     travel times that do not follow geometry.
package builder
