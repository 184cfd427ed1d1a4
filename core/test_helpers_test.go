// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/geograph/core"
	"github.com/stretchr/testify/require"
)

// Node names used across core tests.
const (
	Jakarta    = "Jakarta"
	Bandung    = "Bandung"
	Semarang   = "Semarang"
	Surabaya   = "Surabaya"
	Yogyakarta = "Yogyakarta"

	Unknown = "Atlantis"
)

// javaNodes lists the fixture cities in insertion order.
var javaNodes = []core.Node{
	{Name: Jakarta, Lat: -6.2088, Lon: 106.8456},
	{Name: Bandung, Lat: -6.9175, Lon: 107.6191},
	{Name: Semarang, Lat: -7.0051, Lon: 110.4381},
	{Name: Surabaya, Lat: -7.2575, Lon: 112.7521},
	{Name: Yogyakarta, Lat: -7.7956, Lon: 110.3695},
}

// newJavaNodes returns a graph holding the fixture cities and no edges.
func newJavaNodes(t testing.TB, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, n := range javaNodes {
		require.NoError(t, g.AddNode(n.Name, n.Lat, n.Lon))
	}

	return g
}

// newJavaGraph returns the fixture cities connected by six auto-weighted,
// bidirectional roads.
func newJavaGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := newJavaNodes(t)
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
