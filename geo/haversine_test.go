// SPDX-License-Identifier: MIT

package geo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geograph/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kmTolerance = 0.01

func TestHaversine_IdenticalPointsIsZero(t *testing.T) {
	points := []geo.Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: -6.2088, Lon: 106.8456},
		{Lat: 89.9999, Lon: -179.9999},
		{Lat: -90, Lon: 180},
	}
	for _, p := range points {
		assert.Zero(t, geo.Haversine(p.Lat, p.Lon, p.Lat, p.Lon), "point %s", p)
	}
}

func TestHaversine_KnownDistances(t *testing.T) {
	cases := []struct {
		name string
		a, b geo.Coordinate
		want float64
	}{
		{"Jakarta-Bandung", geo.Coordinate{Lat: -6.2088, Lon: 106.8456}, geo.Coordinate{Lat: -6.9175, Lon: 107.6191}, 116.2364},
		{"Semarang-Yogyakarta", geo.Coordinate{Lat: -7.0051, Lon: 110.4381}, geo.Coordinate{Lat: -7.7956, Lon: 110.3695}, 88.2245},
		{"Berlin-Paris", geo.Coordinate{Lat: 52.5200, Lon: 13.4050}, geo.Coordinate{Lat: 48.8566, Lon: 2.3522}, 877.46},
		{"quarter meridian", geo.Coordinate{Lat: 0, Lon: 0}, geo.Coordinate{Lat: 90, Lon: 0}, math.Pi * geo.EarthRadiusKm / 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geo.Haversine(tc.a.Lat, tc.a.Lon, tc.b.Lat, tc.b.Lon)
			assert.InDelta(t, tc.want, got, kmTolerance)
		})
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	a := geo.Coordinate{Lat: -7.2575, Lon: 112.7521}
	b := geo.Coordinate{Lat: -6.2088, Lon: 106.8456}

	ab := a.DistanceTo(b)
	ba := b.DistanceTo(a)
	assert.InDelta(t, ab, ba, 1e-9)
}

func TestHaversine_AntipodalIsHalfCircumference(t *testing.T) {
	half := math.Pi * geo.EarthRadiusKm
	pairs := [][4]float64{
		{0, 0, 0, 180},
		{90, 0, -90, 0},
		{45, 45, -45, -135},
		{-6.2088, 106.8456, 6.2088, -73.1544},
	}
	for _, p := range pairs {
		got := geo.Haversine(p[0], p[1], p[2], p[3])
		require.False(t, math.IsNaN(got), "NaN for %v", p)
		assert.InDelta(t, half, got, kmTolerance, "pair %v", p)
	}
}

func TestHaversine_OutOfRangeAccepted(t *testing.T) {
	// 370° of longitude is the same meridian as 10°.
	got := geo.Haversine(0, 370, 0, 10)
	assert.InDelta(t, 0, got, 1e-6)
}

func TestHaversineRadius_ScalesLinearly(t *testing.T) {
	unit := geo.HaversineRadius(10, 20, 30, 40, 1)
	km := geo.Haversine(10, 20, 30, 40)
	assert.InDelta(t, km, unit*geo.EarthRadiusKm, 1e-9)
}

func TestCoordinate_Valid(t *testing.T) {
	assert.True(t, geo.Coordinate{Lat: -90, Lon: 180}.Valid())
	assert.True(t, geo.Coordinate{Lat: 12.5, Lon: -77}.Valid())
	assert.False(t, geo.Coordinate{Lat: 90.01, Lon: 0}.Valid())
	assert.False(t, geo.Coordinate{Lat: 0, Lon: -180.5}.Valid())
}

func BenchmarkHaversine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = geo.Haversine(-6.2088, 106.8456, -7.2575, 112.7521)
	}
}
