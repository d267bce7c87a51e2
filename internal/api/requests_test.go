// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shelterscout/internal/scoring"
)

func TestCoerceCount(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		def  int
		want int
	}{
		{"json number", float64(3), 1, 3},
		{"numeric string", "4", 1, 4},
		{"padded numeric string", " 2 ", 1, 2},
		{"garbage string", "abc", 1, 1},
		{"empty string", "", 0, 0},
		{"missing field", nil, 1, 1},
		{"boolean", true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceCount(tt.in, tt.def))
		})
	}
}

func TestRecommendRequestProfile(t *testing.T) {
	t.Run("labels and counts map onto the profile", func(t *testing.T) {
		req := RecommendRequest{
			AdultCount: "2",
			ChildCount: float64(3),
			SupplyA:    "highest",
			SupplyB:    "低",
			SupplyC:    "",
		}
		p := req.Profile()

		assert.Equal(t, 5, p.TotalPeople)
		assert.Equal(t, scoring.Highest, p.Needs[scoring.SupplyA])
		assert.Equal(t, scoring.Low, p.Needs[scoring.SupplyB])
		assert.Equal(t, scoring.Medium, p.Needs[scoring.SupplyC])
	})

	t.Run("defaults apply when counts are absent", func(t *testing.T) {
		p := (&RecommendRequest{}).Profile()
		assert.Equal(t, 1, p.TotalPeople)
	})
}
