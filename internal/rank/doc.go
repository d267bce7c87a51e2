// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rank selects nearby shelter candidates and orders them by
// recommendation score.
//
// The pipeline has two entry modes. A fresh search loads the registry,
// keeps the nearest K shelters, attaches a feature snapshot to each and
// scores them. A recalculation re-scores a previously returned list
// against a changed profile, reusing each entry's preserved snapshot so
// the client can adjust supply needs without re-querying positions.
//
// The package holds no state between requests; collaborators (registry
// loader, feature provider, distance function) are injected.
package rank
