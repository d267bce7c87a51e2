// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allNeeds(label PriorityLabel) map[SupplyItem]PriorityLabel {
	return map[SupplyItem]PriorityLabel{
		SupplyA: label,
		SupplyB: label,
		SupplyC: label,
	}
}

func TestSupplyScoreAllDeclinedNoStock(t *testing.T) {
	// Declining everything at an empty shelter is a perfect supply match.
	p := NewProfile(1, 0, allNeeds(Lowest))
	f := Features{Congestion: 50}

	_, supply := Score(p, f)
	assert.Equal(t, 100.0, supply)
}

func TestSupplyScoreAllDeclinedFullStock(t *testing.T) {
	// totalWeight == 0 branch: 100 + (-20 * 3) = 40.
	p := NewProfile(1, 0, allNeeds(Lowest))
	f := Features{Congestion: 50, StockA: 100, StockB: 100, StockC: 100}

	_, supply := Score(p, f)
	assert.Equal(t, 40.0, supply)
}

func TestSupplyScoreAllWantedNoStock(t *testing.T) {
	p := NewProfile(1, 0, allNeeds(Highest))
	f := Features{Congestion: 50}

	_, supply := Score(p, f)
	assert.Equal(t, 0.0, supply)
}

func TestSupplyScoreAllWantedFullStock(t *testing.T) {
	p := NewProfile(1, 0, allNeeds(Highest))
	f := Features{Congestion: 50, StockA: 20, StockB: 20, StockC: 20}

	_, supply := Score(p, f)
	assert.Equal(t, 100.0, supply)
}

func TestSupplyScorePartialStockHalvesWeight(t *testing.T) {
	// One wanted item at partial stock: acquired 5, total 10 => 50.0.
	p := NewProfile(1, 0, map[SupplyItem]PriorityLabel{
		SupplyA: Highest,
		SupplyB: Lowest,
		SupplyC: Lowest,
	})
	f := Features{StockA: 10}

	_, supply := Score(p, f)
	assert.Equal(t, 50.0, supply)
}

func TestSupplyScoreCanGoNegative(t *testing.T) {
	// Penalties dominate: acquired = 3 - 20 - 20 = -37, total = 3.
	// (-37/3)*100 = -1233.3; no lower clamp.
	p := NewProfile(1, 0, map[SupplyItem]PriorityLabel{
		SupplyA: Medium,
		SupplyB: Lowest,
		SupplyC: Lowest,
	})
	f := Features{StockA: 100, StockB: 100, StockC: 100}

	_, supply := Score(p, f)
	assert.Equal(t, -1233.3, supply)
}

func TestSupplyScoreClampedAt100(t *testing.T) {
	// Missing needs default to Medium (3 each): full stock everywhere
	// yields exactly the achievable maximum, never above it.
	p := NewProfile(1, 0, nil)
	f := Features{StockA: 50, StockB: 50, StockC: 50}

	_, supply := Score(p, f)
	assert.Equal(t, 100.0, supply)
}

func TestCompositeSmallHouseholdWeights(t *testing.T) {
	// totalPeople = 5 uses the (5,5) pair and the raw congestion value.
	p := NewProfile(5, 0, allNeeds(Highest))
	f := Features{Congestion: 80, StockA: 20, StockB: 20, StockC: 20}

	composite, supply := Score(p, f)
	assert.Equal(t, 100.0, supply)
	assert.Equal(t, 90.0, composite) // (80*5 + 100*5) / 10
}

func TestCompositeLargeHouseholdWeights(t *testing.T) {
	// totalPeople = 6 flips to (7,3) and inverts congestion.
	p := NewProfile(6, 0, allNeeds(Highest))
	f := Features{Congestion: 80, StockA: 20, StockB: 20, StockC: 20}

	composite, supply := Score(p, f)
	assert.Equal(t, 100.0, supply)
	assert.Equal(t, 44.0, composite) // ((100-80)*7 + 100*3) / 10
}

func TestCompositeBoundedForSmallHouseholds(t *testing.T) {
	p := NewProfile(2, 1, allNeeds(Highest))
	f := Features{Congestion: 100, StockA: 100, StockB: 100, StockC: 100}

	composite, _ := Score(p, f)
	assert.LessOrEqual(t, composite, 100.0)
}

// TestSmallHouseholdCongestionQuirk pins the established behavior where
// small households rank MORE congested shelters higher. See the comment
// in Score before changing this.
func TestSmallHouseholdCongestionQuirk(t *testing.T) {
	p := NewProfile(2, 0, allNeeds(Medium))
	quiet := Features{Congestion: 10, StockA: 50, StockB: 50, StockC: 50}
	crowded := Features{Congestion: 90, StockA: 50, StockB: 50, StockC: 50}

	quietScore, _ := Score(p, quiet)
	crowdedScore, _ := Score(p, crowded)
	assert.Greater(t, crowdedScore, quietScore)
}

func TestScoreIsDeterministic(t *testing.T) {
	p := NewProfile(3, 2, map[SupplyItem]PriorityLabel{
		SupplyA: Highest,
		SupplyB: Low,
		SupplyC: Medium,
	})
	f := Features{Congestion: 33, StockA: 15, StockB: 77, StockC: 0}

	c1, s1 := Score(p, f)
	c2, s2 := Score(p, f)
	assert.Equal(t, c1, c2)
	assert.Equal(t, s1, s2)
}

func TestScoreRoundsToOneDecimal(t *testing.T) {
	p := NewProfile(1, 0, map[SupplyItem]PriorityLabel{
		SupplyA: Highest,
		SupplyB: High,
		SupplyC: Medium,
	})
	// acquired = 10 + 3 = 13 of 19 => 68.421... => 68.4
	f := Features{Congestion: 0, StockA: 20, StockB: 0, StockC: 20}

	composite, supply := Score(p, f)
	assert.Equal(t, 68.4, supply)
	assert.Equal(t, 34.2, composite) // (0*5 + 68.42...*5)/10 = 34.21... => 34.2
}
