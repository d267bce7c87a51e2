// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package scoring implements the shelter recommendation score.
//
// The score combines a congestion component with a supply-match component
// computed from the user's declared priority for each relief supply item.
// Priorities carry signed weights: wanting an item scores its presence,
// declining an item penalizes shelters that stock it (so scarce supplies
// are steered toward households that asked for them).
//
// Everything in this package is a pure function over value types. Inputs
// are assumed sanitized by the caller; there are no error paths.
package scoring
