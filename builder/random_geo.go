// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/geo"
)

const methodRandomGeo = "RandomGeo"

// RandomGeo returns a graph of n nodes placed uniformly at random inside the
// configured bounds. Every unordered pair {i, j} (ordered pair under
// WithDirected) becomes an edge with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - a random source is set (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials.
func RandomGeo(n int, p float64, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)

	// 1) Validate parameters
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomGeo, n, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g: %w", methodRandomGeo, p, ErrInvalidProbability)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomGeo, ErrNeedRandSource)
	}
	b := cfg.bounds
	if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
		return nil, fmt.Errorf("%s: %+v: %w", methodRandomGeo, b, ErrInvalidBounds)
	}

	// 2) Nodes, index ascending
	g := core.NewGraph(cfg.graphOpts...)
	rng := cfg.rng
	coords := make([]geo.Coordinate, n)
	for i := 0; i < n; i++ {
		coords[i] = geo.Coordinate{
			Lat: b.MinLat + rng.Float64()*(b.MaxLat-b.MinLat),
			Lon: b.MinLon + rng.Float64()*(b.MaxLon-b.MinLon),
		}
		if err := g.AddNode(cfg.name(i), coords[i].Lat, coords[i].Lon); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodRandomGeo, cfg.name(i), err)
		}
	}

	// 3) Edge trials: i asc, j asc
	var i, j int
	for i = 0; i < n; i++ {
		j = i + 1
		if cfg.directed {
			j = 0
		}
		for ; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() >= p {
				continue
			}
			if err := addEdge(g, cfg, cfg.name(i), cfg.name(j), coords[i], coords[j]); err != nil {
				return nil, fmt.Errorf("%s: %w", methodRandomGeo, err)
			}
		}
	}

	return g, nil
}

// addEdge inserts u→v (and v→u unless directed) with the configured weight policy.
func addEdge(g *core.Graph, cfg config, u, v string, cu, cv geo.Coordinate) error {
	var opts []core.EdgeOption
	if cfg.directed {
		opts = append(opts, core.WithDirected(true))
	}
	if cfg.weightFn != nil {
		opts = append(opts, core.WithWeight(cfg.weightFn(cfg.rng, cu.DistanceTo(cv))))
	}
	if err := g.AddEdge(u, v, opts...); err != nil {
		return fmt.Errorf("AddEdge(%s→%s): %w", u, v, err)
	}

	return nil
}
