// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/geograph/core"
	"github.com/stretchr/testify/require"
)

const (
	Jakarta    = "Jakarta"
	Bandung    = "Bandung"
	Semarang   = "Semarang"
	Surabaya   = "Surabaya"
	Yogyakarta = "Yogyakarta"
)

// javaGraph returns five Javanese cities joined by six auto-weighted roads.
func javaGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(Jakarta, -6.2088, 106.8456))
	require.NoError(t, g.AddNode(Bandung, -6.9175, 107.6191))
	require.NoError(t, g.AddNode(Semarang, -7.0051, 110.4381))
	require.NoError(t, g.AddNode(Surabaya, -7.2575, 112.7521))
	require.NoError(t, g.AddNode(Yogyakarta, -7.7956, 110.3695))

	roads := [][2]string{
		{Jakarta, Bandung},
		{Bandung, Semarang},
		{Semarang, Surabaya},
		{Bandung, Yogyakarta},
		{Yogyakarta, Surabaya},
		{Semarang, Yogyakarta},
	}
	for _, r := range roads {
		require.NoError(t, g.AddEdge(r[0], r[1]))
	}

	return g
}

// weighted returns a graph over the given names with explicit one-way edges.
func weighted(t testing.TB, names []string, edges []wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDefaultDirected())
	for _, n := range names {
		require.NoError(t, g.AddNode(n, 0, 0))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, core.WithWeight(e.w)))
	}

	return g
}

type wedge struct {
	from, to string
	w        float64
}

// pathWeight sums Weight(from, to) along p; only meaningful without parallel edges.
func pathWeight(t testing.TB, g *core.Graph, nodes []string) float64 {
	t.Helper()
	var sum float64
	for k := 1; k < len(nodes); k++ {
		w, err := g.Weight(nodes[k-1], nodes[k])
		require.NoError(t, err)
		sum += w
	}

	return sum
}
