// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package rank

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"shelterscout/internal/scoring"
)

// ErrFeatureUnavailable marks failures to obtain a feature snapshot for
// a candidate shelter. Callers map it to an upstream-failure response.
var ErrFeatureUnavailable = errors.New("feature snapshot unavailable")

// FeatureProvider yields the current congestion and stock snapshot for
// a shelter. Implementations may call external telemetry services; the
// context bounds that call.
type FeatureProvider interface {
	Snapshot(ctx context.Context, shelterName string) (scoring.Features, error)
}

// RandomFeatureProvider synthesizes snapshots from a uniform 0..100
// draw per field. It stands in for live telemetry during development
// and demos; a fixed seed makes runs reproducible.
type RandomFeatureProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomFeatureProvider returns a provider seeded with seed, or from
// the clock when seed is zero.
func NewRandomFeatureProvider(seed int64) *RandomFeatureProvider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomFeatureProvider{rng: rand.New(rand.NewSource(seed))}
}

// Snapshot implements FeatureProvider. It never fails.
func (p *RandomFeatureProvider) Snapshot(_ context.Context, _ string) (scoring.Features, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return scoring.Features{
		Congestion: float64(p.rng.Intn(101)),
		StockA:     float64(p.rng.Intn(101)),
		StockB:     float64(p.rng.Intn(101)),
		StockC:     float64(p.rng.Intn(101)),
	}, nil
}
