// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/geograph/core"
)

// ShortestPath returns the shortest path from source to destination.
//
// Both names must exist in g (ErrUnknownNode otherwise). An unknown
// destination is reported before the search runs. When destination is unreachable the
// result is (Path{}, false, nil). When source == destination the path is
// the single node with distance 0.
func ShortestPath(g *core.Graph, source, destination string, opts ...Option) (Path, bool, error) {
	if g != nil && g.HasNode(source) && !g.HasNode(destination) {
		return Path{}, false, fmt.Errorf("%w: destination %q", ErrUnknownNode, destination)
	}

	res, err := Compute(g, source, opts...)
	if err != nil {
		return Path{}, false, err
	}

	return res.PathTo(destination)
}
