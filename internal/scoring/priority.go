// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scoring

import "strings"

// SupplyItem identifies one of the fixed relief supply categories a
// shelter may stock. The set is closed: scoring iterates over Items.
type SupplyItem string

const (
	// SupplyA is the first supply category (drinking water in the
	// reference data set).
	SupplyA SupplyItem = "supply_a"
	// SupplyB is the second supply category (food rations).
	SupplyB SupplyItem = "supply_b"
	// SupplyC is the third supply category (blankets).
	SupplyC SupplyItem = "supply_c"
)

// Items lists all supply categories in scoring order.
var Items = [3]SupplyItem{SupplyA, SupplyB, SupplyC}

// PriorityLabel is a user's declared desire level for a supply item.
// The zero value is Unspecified, which scores identically to Medium so
// that absent map entries fall back to the default weight.
type PriorityLabel int

const (
	// Unspecified means the user did not state a priority. Treated as Medium.
	Unspecified PriorityLabel = iota
	// Highest marks an item the household critically needs.
	Highest
	// High marks an item the household wants.
	High
	// Medium is the neutral default.
	Medium
	// Low marks an item the household can do without; stocking it is
	// mildly penalized so it can go to others.
	Low
	// Lowest marks an item the household explicitly declines; stocking it
	// is heavily penalized.
	Lowest
)

// Signed priority weights. Positive weights count toward the achievable
// maximum; negative weights only ever subtract from the acquired total.
const (
	weightHighest = 10
	weightHigh    = 6
	weightMedium  = 3
	weightLow     = -5
	weightLowest  = -20
)

// Weight returns the signed integer weight for the label. The mapping is
// total: any label outside the known set resolves to Medium's weight.
func (l PriorityLabel) Weight() int {
	switch l {
	case Highest:
		return weightHighest
	case High:
		return weightHigh
	case Low:
		return weightLow
	case Lowest:
		return weightLowest
	default:
		return weightMedium
	}
}

// String returns the canonical wire name for the label.
func (l PriorityLabel) String() string {
	switch l {
	case Highest:
		return "highest"
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	case Lowest:
		return "lowest"
	default:
		return "unspecified"
	}
}

// ParseLabel converts a raw priority string to a PriorityLabel. Both the
// English wire names and the Japanese labels used by the municipal data
// set are accepted. Empty or unrecognized input yields Medium, matching
// the sanitizer contract: the score function never sees invalid labels.
func ParseLabel(s string) PriorityLabel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "highest", "最高":
		return Highest
	case "high", "高":
		return High
	case "medium", "中":
		return Medium
	case "low", "低":
		return Low
	case "lowest", "最低":
		return Lowest
	default:
		return Medium
	}
}
