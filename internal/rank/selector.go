// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package rank

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"shelterscout/internal/geo"
	"shelterscout/internal/shelter"
)

// NearestK returns the k shelters closest to origin, ascending by
// distance. Distances are computed concurrently, one task per shelter,
// and joined before the sort; the sort is stable so shelters at equal
// distance keep their registry order. The input slice is not mutated.
func NearestK(origin geo.Point, shelters []shelter.Shelter, k int, dist geo.DistanceFunc) []Candidate {
	candidates := make([]Candidate, len(shelters))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range shelters {
		g.Go(func() error {
			candidates[i] = Candidate{
				Shelter:        s,
				DistanceMeters: dist(origin, geo.Point{Lat: s.Lat, Lng: s.Lng}),
			}
			return nil
		})
	}
	_ = g.Wait() // distance tasks never fail

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceMeters < candidates[j].DistanceMeters
	})

	if k >= 0 && k < len(candidates) {
		candidates = candidates[:k]
	}
	return candidates
}

// NearbyWindow returns the 2nd through 4th nearest shelters, for the
// simple "other shelters around you" listing that omits the obvious
// closest hit. Degenerate inputs shrink the window instead of failing:
// with fewer than 2 shelters the window starts at the nearest, with
// fewer than 4 it ends at the last. Only an empty registry produces an
// empty result.
func NearbyWindow(origin geo.Point, shelters []shelter.Shelter, dist geo.DistanceFunc) []Candidate {
	sorted := NearestK(origin, shelters, len(shelters), dist)

	start := 0
	if len(sorted) >= 2 {
		start = 1
	}
	end := len(sorted)
	if len(sorted) >= 4 {
		end = 4
	}

	window := make([]Candidate, end-start)
	copy(window, sorted[start:end])
	return window
}
