// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package rank

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"

	"shelterscout/internal/logging"
	"shelterscout/internal/scoring"
)

// BreakerFeatureProvider wraps a FeatureProvider with a circuit
// breaker so a failing telemetry backend sheds load quickly instead of
// stalling every ranking request on its timeout.
type BreakerFeatureProvider struct {
	inner FeatureProvider
	cb    *gobreaker.CircuitBreaker[scoring.Features]
}

// BreakerConfig tunes the circuit breaker thresholds.
type BreakerConfig struct {
	MaxFailures uint32
	Timeout     time.Duration
}

// NewBreakerFeatureProvider wraps inner with a breaker that opens after
// cfg.MaxFailures consecutive failures and probes again after
// cfg.Timeout.
func NewBreakerFeatureProvider(inner FeatureProvider, cfg BreakerConfig) *BreakerFeatureProvider {
	settings := gobreaker.Settings{
		Name:    "feature-provider",
		Timeout: cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Feature provider circuit breaker state changed")
		},
	}
	return &BreakerFeatureProvider{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[scoring.Features](settings),
	}
}

// Snapshot implements FeatureProvider. While the breaker is open it
// fails immediately with the breaker's error.
func (p *BreakerFeatureProvider) Snapshot(ctx context.Context, shelterName string) (scoring.Features, error) {
	return p.cb.Execute(func() (scoring.Features, error) {
		return p.inner.Snapshot(ctx, shelterName)
	})
}
