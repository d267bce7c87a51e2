// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package rank

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"shelterscout/internal/geo"
	"shelterscout/internal/metrics"
	"shelterscout/internal/scoring"
	"shelterscout/internal/shelter"
)

const defaultNearestK = 5

// Pipeline wires the shelter registry, feature provider and distance
// function into the recommendation flow.
type Pipeline struct {
	store    shelter.Loader
	features FeatureProvider
	distance geo.DistanceFunc
	nearestK int
	logger   zerolog.Logger
}

// NewPipeline constructs a Pipeline. A non-positive nearestK falls back
// to the default of 5 candidates; a nil distance function falls back to
// the haversine formula.
func NewPipeline(store shelter.Loader, features FeatureProvider, distance geo.DistanceFunc, nearestK int, logger zerolog.Logger) *Pipeline {
	if nearestK <= 0 {
		nearestK = defaultNearestK
	}
	if distance == nil {
		distance = geo.HaversineMeters
	}
	return &Pipeline{
		store:    store,
		features: features,
		distance: distance,
		nearestK: nearestK,
		logger:   logger.With().Str("component", "rank").Logger(),
	}
}

// Recommend runs a fresh search: it loads the registry, keeps the
// nearest candidates, attaches a feature snapshot to each and returns
// them ordered by match score, best first. Ties keep distance order.
func (p *Pipeline) Recommend(ctx context.Context, origin geo.Point, profile scoring.Profile) ([]ScoredShelter, error) {
	start := time.Now()
	defer func() {
		metrics.RankingDuration.Observe(time.Since(start).Seconds())
	}()

	shelters, err := p.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	candidates := NearestK(origin, shelters, p.nearestK, p.distance)

	scored := make([]ScoredShelter, 0, len(candidates))
	for _, c := range candidates {
		feats, err := p.features.Snapshot(ctx, c.Name)
		if err != nil {
			metrics.FeatureSnapshotErrors.Inc()
			return nil, fmt.Errorf("%w: %q: %v", ErrFeatureUnavailable, c.Name, err)
		}
		score, rate := scoring.Score(profile, feats)
		scored = append(scored, ScoredShelter{
			Name:           c.Name,
			Lat:            c.Lat,
			Lng:            c.Lng,
			DistanceMeters: c.DistanceMeters,
			Features:       feats,
			MatchScore:     score,
			MatchRate:      rate,
		})
	}

	sortByScore(scored)
	metrics.RecommendationsServed.WithLabelValues("fresh").Inc()

	p.logger.Debug().
		Int("candidates", len(scored)).
		Int("total_people", profile.TotalPeople).
		Msg("Fresh recommendation computed")
	return scored, nil
}

// Recalculate re-scores a previously returned recommendation list for
// a changed profile. Name, position, distance and feature snapshot are
// preserved verbatim from the input; only the scores and the ordering
// change. The input slice is not mutated.
func (p *Pipeline) Recalculate(entries []ScoredShelter, profile scoring.Profile) []ScoredShelter {
	start := time.Now()
	defer func() {
		metrics.RankingDuration.Observe(time.Since(start).Seconds())
	}()

	scored := make([]ScoredShelter, len(entries))
	copy(scored, entries)
	for i := range scored {
		scored[i].MatchScore, scored[i].MatchRate = scoring.Score(profile, scored[i].Features)
	}

	sortByScore(scored)
	metrics.RecommendationsServed.WithLabelValues("recalculated").Inc()

	p.logger.Debug().
		Int("candidates", len(scored)).
		Int("total_people", profile.TotalPeople).
		Msg("Recommendation recalculated")
	return scored
}

// Nearby returns the 2nd through 4th nearest shelters to origin,
// without scores.
func (p *Pipeline) Nearby(ctx context.Context, origin geo.Point) ([]Candidate, error) {
	shelters, err := p.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NearbyWindow(origin, shelters, p.distance), nil
}

// sortByScore orders entries best-first. The stable sort keeps the
// incoming distance order for equal scores.
func sortByScore(entries []ScoredShelter) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MatchScore > entries[j].MatchScore
	})
}
