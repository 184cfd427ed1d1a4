// SPDX-License-Identifier: MIT

package geo

import "fmt"

// Coordinate is a point on the globe in signed decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// DistanceTo returns the great-circle distance from c to other in kilometers.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	return Haversine(c.Lat, c.Lon, other.Lat, other.Lon)
}

// Valid reports whether c lies within latitude [-90, 90] and longitude [-180, 180].
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// String formats c as "lat,lon" with six decimals.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}
