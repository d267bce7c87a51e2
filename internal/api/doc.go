// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api exposes the HTTP surface of the recommendation service.
//
// All endpoints share a standardized response envelope (APIResponse)
// with a success flag, payload, machine-readable error codes and
// per-request metadata. Request bodies are decoded with goccy/go-json,
// sanitized (household counts arrive as strings from some clients) and
// validated with go-playground/validator before they reach the ranking
// pipeline.
package api
