// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scoring

// Profile captures the scoring-relevant part of a user's request: what
// they need and how many people shelter together.
type Profile struct {
	// Needs maps each supply item to the user's declared priority.
	// Missing entries score as Medium.
	Needs map[SupplyItem]PriorityLabel `json:"needs"`

	// TotalPeople is the household size, floored at 1.
	TotalPeople int `json:"total_people"`
}

// NewProfile builds a Profile from sanitized headcounts and needs.
// The total is adults+children, floored at 1 regardless of input.
func NewProfile(adults, children int, needs map[SupplyItem]PriorityLabel) Profile {
	total := adults + children
	if total < 1 {
		total = 1
	}
	return Profile{Needs: needs, TotalPeople: total}
}

// Features is a shelter's point-in-time congestion and stock snapshot.
// All values are in [0,100]. Snapshots are opaque to the score function:
// they are either freshly sampled by a feature provider or carried over
// verbatim from a previous response, never recomputed here.
type Features struct {
	// Congestion is the reported crowding level.
	Congestion float64 `json:"congestion"`

	// StockA, StockB, StockC are availability levels per supply item.
	StockA float64 `json:"supply_a"`
	StockB float64 `json:"supply_b"`
	StockC float64 `json:"supply_c"`
}

// Stock returns the availability level for the given supply item.
func (f Features) Stock(item SupplyItem) float64 {
	switch item {
	case SupplyA:
		return f.StockA
	case SupplyB:
		return f.StockB
	case SupplyC:
		return f.StockC
	default:
		return 0
	}
}
