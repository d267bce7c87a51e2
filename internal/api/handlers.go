// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"shelterscout/internal/geo"
	"shelterscout/internal/logging"
	"shelterscout/internal/rank"
	"shelterscout/internal/scoring"
	"shelterscout/internal/shelter"
)

// Recommender is the ranking pipeline surface the handlers depend on.
type Recommender interface {
	Recommend(ctx context.Context, origin geo.Point, profile scoring.Profile) ([]rank.ScoredShelter, error)
	Recalculate(entries []rank.ScoredShelter, profile scoring.Profile) []rank.ScoredShelter
	Nearby(ctx context.Context, origin geo.Point) ([]rank.Candidate, error)
}

// Handler serves the recommendation endpoints.
type Handler struct {
	pipeline  Recommender
	registry  shelter.Loader
	startTime time.Time
}

// NewHandler creates a Handler. The registry loader is used only by the
// readiness probe.
func NewHandler(pipeline Recommender, registry shelter.Loader) *Handler {
	return &Handler{
		pipeline:  pipeline,
		registry:  registry,
		startTime: time.Now(),
	}
}

// RecommendResponse wraps a ranked shelter list.
type RecommendResponse struct {
	Shelters []rank.ScoredShelter `json:"shelters"`
}

// NearbyResponse wraps an unscored nearby shelter list.
type NearbyResponse struct {
	Shelters []rank.Candidate `json:"shelters"`
}

// Recommend handles POST /api/v1/shelters/recommend. It runs a fresh
// search around the caller's position and returns the ranked list.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecommendRequest
	if err := decodeJSON(r, &req); err != nil {
		rw.BadRequest("Invalid JSON body")
		return
	}
	if verr := validateRequest(&req); verr != nil {
		rw.ValidationError("Request validation failed", verr)
		return
	}

	origin := geo.Point{Lat: *req.Lat, Lng: *req.Lng}
	shelters, err := h.pipeline.Recommend(r.Context(), origin, req.Profile())
	if err != nil {
		h.writeRankingError(rw, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("shelters", len(shelters)).
		Msg("Recommendation served")
	rw.Success(RecommendResponse{Shelters: shelters})
}

// Recalculate handles POST /api/v1/shelters/recalculate. It re-scores
// a previously returned list for a changed household profile without
// touching the registry or the feature provider.
func (h *Handler) Recalculate(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecalculateRequest
	if err := decodeJSON(r, &req); err != nil {
		rw.BadRequest("Invalid JSON body")
		return
	}
	if verr := validateRequest(&req); verr != nil {
		rw.ValidationError("Request validation failed", verr)
		return
	}

	shelters := h.pipeline.Recalculate(req.Entries(), req.Profile())

	logging.Ctx(r.Context()).Info().
		Int("shelters", len(shelters)).
		Msg("Recommendation recalculated")
	rw.Success(RecommendResponse{Shelters: shelters})
}

// Nearby handles POST /api/v1/shelters/nearby: the 2nd through 4th
// nearest shelters, without scores.
func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req NearbyRequest
	if err := decodeJSON(r, &req); err != nil {
		rw.BadRequest("Invalid JSON body")
		return
	}
	if verr := validateRequest(&req); verr != nil {
		rw.ValidationError("Request validation failed", verr)
		return
	}

	origin := geo.Point{Lat: *req.Lat, Lng: *req.Lng}
	shelters, err := h.pipeline.Nearby(r.Context(), origin)
	if err != nil {
		h.writeRankingError(rw, err)
		return
	}

	rw.Success(NearbyResponse{Shelters: shelters})
}

// WeatherAlert is a single active weather advisory.
type WeatherAlert struct {
	Area     string `json:"area"`
	Severity string `json:"severity"`
	Headline string `json:"headline"`
	IssuedAt string `json:"issued_at"`
}

// WeatherAlerts handles POST /api/v1/alerts/weather. The upstream
// weather integration is not connected yet, so this serves a fixed
// advisory for client development.
// TODO: replace with the JMA alert feed once the data contract is agreed.
func (h *Handler) WeatherAlerts(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success([]WeatherAlert{
		{
			Area:     "Kyoto City",
			Severity: "advisory",
			Headline: "Heavy rain advisory in effect",
			IssuedAt: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:        "ok",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles GET /health/live. The process is alive if it can
// answer at all.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /health/ready. Readiness requires the shelter
// registry to be loadable.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if _, err := h.registry.Load(r.Context()); err != nil {
		rw.DataUnavailableError(err)
		return
	}
	rw.Success(HealthStatus{
		Status:        "ready",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// writeRankingError maps pipeline errors to response codes.
func (h *Handler) writeRankingError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, shelter.ErrDataUnavailable):
		rw.DataUnavailableError(err)
	case errors.Is(err, rank.ErrFeatureUnavailable):
		rw.ExternalServiceError("feature-provider", err)
	default:
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Ranking failed")
		rw.InternalError("Failed to compute recommendation")
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
