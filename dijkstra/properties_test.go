// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/geograph/builder"
	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// bellmanFord is the reference oracle: |V|-1 rounds of relaxing every arc.
func bellmanFord(g *core.Graph, source string) map[string]float64 {
	dist := make(map[string]float64, g.NodeCount())
	for _, n := range g.Nodes() {
		dist[n.Name] = math.Inf(1)
	}
	dist[source] = 0

	edges := g.Edges()
	for round := 1; round < g.NodeCount(); round++ {
		changed := false
		for _, e := range edges {
			if nd := dist[e.From] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

type randomCase struct {
	name string
	opts []builder.Option
}

func randomCases() []randomCase {
	var cases []randomCase
	for seed := int64(1); seed <= 12; seed++ {
		cases = append(cases,
			randomCase{
				name: fmt.Sprintf("haversine/seed=%d", seed),
				opts: []builder.Option{builder.WithSeed(seed)},
			},
			randomCase{
				name: fmt.Sprintf("directed-int/seed=%d", seed),
				opts: []builder.Option{
					builder.WithSeed(seed),
					builder.WithDirected(),
					builder.WithWeightFn(func(r *rand.Rand, _ float64) float64 { return float64(r.Intn(6)) }),
				},
			},
		)
	}

	return cases
}

// TestCompute_Properties checks every search over random graphs against the
// oracle and against the structural guarantees of a shortest-path tree.
func TestCompute_Properties(t *testing.T) {
	for _, tc := range randomCases() {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.RandomGeo(24, 0.12, tc.opts...)
			require.NoError(t, err)

			source := g.NameAt(0)
			res, err := dijkstra.Compute(g, source)
			require.NoError(t, err)
			want := bellmanFord(g, source)
			dist := res.Distances()

			// Matches the oracle, non-negative, zero at the source.
			assert.Zero(t, dist[source])
			for name, d := range dist {
				assert.GreaterOrEqual(t, d, 0.0, name)
				if math.IsInf(want[name], 1) {
					assert.True(t, math.IsInf(d, 1), "%s should be unreachable", name)
					assert.False(t, res.Reachable(name))
					continue
				}
				assert.InDelta(t, want[name], d, 1e-6, name)
			}

			// Triangle inequality over every stored arc.
			for _, e := range g.Edges() {
				if math.IsInf(dist[e.From], 1) {
					continue
				}
				assert.LessOrEqual(t, dist[e.To], dist[e.From]+e.Weight+eps, "%s→%s", e.From, e.To)
			}

			// Paths are consistent with the distances they report.
			for _, n := range g.Nodes() {
				path, ok, err := res.PathTo(n.Name)
				require.NoError(t, err)
				if !ok {
					assert.True(t, math.IsInf(dist[n.Name], 1))
					continue
				}
				require.NotEmpty(t, path.Nodes)
				assert.Equal(t, source, path.Nodes[0])
				assert.Equal(t, n.Name, path.Nodes[len(path.Nodes)-1])
				assert.InDelta(t, path.Distance, pathWeight(t, g, path.Nodes), eps)
			}
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	g, err := builder.RandomGeo(40, 0.1, builder.WithSeed(7))
	require.NoError(t, err)

	first, err := dijkstra.Compute(g, "N0")
	require.NoError(t, err)
	second, err := dijkstra.Compute(g, "N0")
	require.NoError(t, err)

	assert.Equal(t, first.Distances(), second.Distances())
	assert.Equal(t, first.Predecessors(), second.Predecessors())
}

func TestCompute_UnreachableComponent(t *testing.T) {
	left, err := builder.Chain([]core.Node{
		{Name: "A", Lat: -6.0, Lon: 106.0},
		{Name: "B", Lat: -6.5, Lon: 107.0},
	})
	require.NoError(t, err)
	require.NoError(t, left.AddNode("C", -7.0, 110.0))
	require.NoError(t, left.AddNode("D", -7.2, 112.0))
	require.NoError(t, left.AddEdge("C", "D"))

	res, err := dijkstra.Compute(left, "A")
	require.NoError(t, err)
	assert.True(t, res.Reachable("B"))
	for _, name := range []string{"C", "D"} {
		d, err := res.Distance(name)
		require.NoError(t, err)
		assert.True(t, math.IsInf(d, 1))

		_, ok, err := res.PathTo(name)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}
