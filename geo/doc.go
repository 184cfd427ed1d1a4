// SPDX-License-Identifier: MIT
//
// Package geo computes great-circle distances between geographic coordinates.
//
// Overview:
//
//   - Haversine returns the distance in kilometers between two (lat, lon) pairs
//     given in degrees, on a sphere of radius EarthRadiusKm.
//   - Coordinate is a small value type for callers that prefer to carry points
//     around as one value.
//
// Numerical notes:
//
//   - The intermediate term a = sin²(Δφ/2) + cos φ1 · cos φ2 · sin²(Δλ/2) is clamped
//     to at most 1 before the square root. Near-antipodal and near-identical pairs
//     can otherwise overshoot 1 by a few ulps and yield NaN from √(1−a).
//   - Inputs are not range-checked. Latitudes outside [-90, 90] or longitudes outside
//     [-180, 180] are treated as plain angles. Use Coordinate.Valid when you need a check.
//
// Guarantees:
//
//   - Pure and deterministic; no allocation.
//   - Haversine(p, p) == 0 for every p.
//   - Symmetric up to floating-point rounding.
//
// Example:
//
//	km := geo.Haversine(-6.2088, 106.8456, -6.9175, 107.6191) // Jakarta → Bandung ≈ 116.24
package geo
