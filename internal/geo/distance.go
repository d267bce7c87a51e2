// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package geo provides great-circle distance computation for candidate
// selection. The selector takes the distance function as an injected
// dependency so tests and alternative backends can substitute their own.
package geo

import "math"

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceFunc returns the distance in meters between two points.
// Implementations must be symmetric and non-negative.
type DistanceFunc func(a, b Point) float64

const earthRadiusMeters = 6371000.0

// HaversineMeters computes the great-circle distance between two points
// using the Haversine formula. Accuracy is within ~0.5% of geodesic
// distance, which is ample for ranking shelters by proximity.
func HaversineMeters(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180.0
	lng1 := a.Lng * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	lng2 := b.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}
