// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/geograph/core"
	"github.com/katalvlaran/geograph/dijkstra"
)

func exampleJava() *core.Graph {
	g := core.NewGraph()
	_ = g.AddNode("Jakarta", -6.2088, 106.8456)
	_ = g.AddNode("Bandung", -6.9175, 107.6191)
	_ = g.AddNode("Semarang", -7.0051, 110.4381)
	_ = g.AddNode("Surabaya", -7.2575, 112.7521)
	_ = g.AddNode("Yogyakarta", -7.7956, 110.3695)

	_ = g.AddEdge("Jakarta", "Bandung")
	_ = g.AddEdge("Bandung", "Semarang")
	_ = g.AddEdge("Semarang", "Surabaya")
	_ = g.AddEdge("Bandung", "Yogyakarta")
	_ = g.AddEdge("Yogyakarta", "Surabaya")
	_ = g.AddEdge("Semarang", "Yogyakarta")

	return g
}

// ExampleShortestPath finds the road route across Java by great-circle legs.
func ExampleShortestPath() {
	g := exampleJava()

	path, ok, err := dijkstra.ShortestPath(g, "Jakarta", "Surabaya")
	if err != nil || !ok {
		fmt.Println("no route:", err)
		return
	}
	fmt.Printf("%s: %.2f km\n", strings.Join(path.Nodes, " → "), path.Distance)
	// Output:
	// Jakarta → Bandung → Semarang → Surabaya: 684.39 km
}

// ExampleCompute prints every distance and predecessor from one source.
func ExampleCompute() {
	g := exampleJava()

	res, err := dijkstra.Compute(g, "Jakarta")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, n := range g.Nodes() {
		d, _ := res.Distance(n.Name)
		prev, ok, _ := res.Predecessor(n.Name)
		if !ok {
			prev = "-"
		}
		fmt.Printf("%-10s %7.2f %s\n", n.Name, d, prev)
	}
	// Output:
	// Jakarta       0.00 -
	// Bandung     116.24 Jakarta
	// Semarang    427.54 Bandung
	// Surabaya    684.39 Semarang
	// Yogyakarta  434.87 Bandung
}
