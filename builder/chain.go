// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/geograph/core"
)

const methodChain = "Chain"

// Chain adds nodes in order and links each consecutive pair with an
// auto-weighted bidirectional edge (one-way under WithDirected, explicit
// weights under WithWeightFn, which then also requires a random source).
func Chain(nodes []core.Node, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	if len(nodes) < 1 {
		return nil, fmt.Errorf("%s: n=0: %w", methodChain, ErrTooFewNodes)
	}
	if cfg.weightFn != nil && cfg.rng == nil {
		return nil, fmt.Errorf("%s: weight function: %w", methodChain, ErrNeedRandSource)
	}

	g := core.NewGraph(cfg.graphOpts...)
	for _, n := range nodes {
		if err := g.AddNode(n.Name, n.Lat, n.Lon); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", methodChain, n.Name, err)
		}
	}
	for k := 1; k < len(nodes); k++ {
		u, v := nodes[k-1], nodes[k]
		if err := addEdge(g, cfg, u.Name, v.Name, u.Coordinate(), v.Coordinate()); err != nil {
			return nil, fmt.Errorf("%s: %w", methodChain, err)
		}
	}

	return g, nil
}
