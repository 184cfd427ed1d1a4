// SPDX-License-Identifier: MIT

package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

const degToRad = math.Pi / 180

// Haversine returns the great-circle distance in kilometers between
// (lat1, lon1) and (lat2, lon2), all given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineRadius(lat1, lon1, lat2, lon2, EarthRadiusKm)
}

// HaversineRadius is Haversine on a sphere of the given radius. The result is
// in the unit of radius.
func HaversineRadius(lat1, lon1, lat2, lon2, radius float64) float64 {
	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	dPhi := (lat2 - lat1) * degToRad
	dLambda := (lon2 - lon1) * degToRad

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	if a > 1 {
		a = 1
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return radius * c
}
