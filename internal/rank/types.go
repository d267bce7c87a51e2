// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package rank

import (
	"shelterscout/internal/scoring"
	"shelterscout/internal/shelter"
)

// Candidate is a shelter with its computed distance from the user.
// The distance is derived per request and never persisted.
type Candidate struct {
	shelter.Shelter
	DistanceMeters float64 `json:"distance"`
}

// ScoredShelter is one ranked recommendation. Features carries the
// snapshot that produced the scores so a later recalculation can reuse
// it verbatim.
type ScoredShelter struct {
	Name           string           `json:"name"`
	Lat            float64          `json:"lat"`
	Lng            float64          `json:"lng"`
	DistanceMeters float64          `json:"distance"`
	Features       scoring.Features `json:"data"`
	MatchScore     float64          `json:"match_score"`
	MatchRate      float64          `json:"match_rate"`
}
