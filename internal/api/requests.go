// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"strconv"
	"strings"

	"shelterscout/internal/rank"
	"shelterscout/internal/scoring"
	"shelterscout/internal/validation"
)

// validateRequest runs struct validation and returns the failing
// fields, or nil when the request is valid.
func validateRequest(s interface{}) []validation.FieldError {
	if err := validation.ValidateStruct(s); err != nil {
		return err.Fields
	}
	return nil
}

// RecommendRequest is the body of a fresh recommendation search.
// Coordinates are pointers so a missing field is distinguishable from
// zero. Household counts are untyped because some clients send them as
// strings; coerceCount sanitizes them.
type RecommendRequest struct {
	Lat        *float64    `json:"lat" validate:"required,latitude"`
	Lng        *float64    `json:"lng" validate:"required,longitude"`
	AdultCount interface{} `json:"adult_count"`
	ChildCount interface{} `json:"child_count"`
	SupplyA    string      `json:"supply_a"`
	SupplyB    string      `json:"supply_b"`
	SupplyC    string      `json:"supply_c"`
}

// Profile builds the scoring profile from the sanitized request.
func (r *RecommendRequest) Profile() scoring.Profile {
	return buildProfile(r.AdultCount, r.ChildCount, r.SupplyA, r.SupplyB, r.SupplyC)
}

// RecalculateShelter is one previously recommended shelter sent back
// for re-scoring. The feature snapshot travels with it so the scores
// can be recomputed without a new telemetry call. The snapshot is a
// pointer so an absent "data" key fails validation instead of silently
// scoring the entry against a zero snapshot.
type RecalculateShelter struct {
	Name           string            `json:"name" validate:"required"`
	Lat            float64           `json:"lat" validate:"latitude"`
	Lng            float64           `json:"lng" validate:"longitude"`
	DistanceMeters float64           `json:"distance" validate:"gte=0"`
	Features       *scoring.Features `json:"data" validate:"required"`
	MatchScore     float64           `json:"match_score"`
	MatchRate      float64           `json:"match_rate"`
}

// RecalculateRequest is the body of a re-scoring request for a changed
// household profile.
type RecalculateRequest struct {
	AdultCount  interface{}          `json:"adult_count"`
	ChildCount  interface{}          `json:"child_count"`
	SupplyA     string               `json:"supply_a"`
	SupplyB     string               `json:"supply_b"`
	SupplyC     string               `json:"supply_c"`
	ShelterList []RecalculateShelter `json:"shelter_list" validate:"required,min=1,dive"`
}

// Profile builds the scoring profile from the sanitized request.
func (r *RecalculateRequest) Profile() scoring.Profile {
	return buildProfile(r.AdultCount, r.ChildCount, r.SupplyA, r.SupplyB, r.SupplyC)
}

// Entries converts the request payload into pipeline entries.
func (r *RecalculateRequest) Entries() []rank.ScoredShelter {
	entries := make([]rank.ScoredShelter, len(r.ShelterList))
	for i, s := range r.ShelterList {
		entries[i] = rank.ScoredShelter{
			Name:           s.Name,
			Lat:            s.Lat,
			Lng:            s.Lng,
			DistanceMeters: s.DistanceMeters,
			Features:       *s.Features,
			MatchScore:     s.MatchScore,
			MatchRate:      s.MatchRate,
		}
	}
	return entries
}

// NearbyRequest is the body of a nearby shelter listing.
type NearbyRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

func buildProfile(adults, children interface{}, supplyA, supplyB, supplyC string) scoring.Profile {
	needs := map[scoring.SupplyItem]scoring.PriorityLabel{
		scoring.SupplyA: scoring.ParseLabel(supplyA),
		scoring.SupplyB: scoring.ParseLabel(supplyB),
		scoring.SupplyC: scoring.ParseLabel(supplyC),
	}
	return scoring.NewProfile(coerceCount(adults, 1), coerceCount(children, 0), needs)
}

// coerceCount accepts a JSON number or a numeric string and falls back
// to def for anything else. Clients embed counts as strings in form
// submissions, so both shapes must work.
func coerceCount(v interface{}, def int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}
