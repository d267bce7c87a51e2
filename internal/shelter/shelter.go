// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shelter loads the evacuation shelter registry. The registry is
// a small CSV file published by the municipality; it is re-read per
// request so operators can swap the file on disk without a restart.
package shelter

import (
	"context"
	"errors"
)

// ErrDataUnavailable indicates the shelter registry could not be read or
// parsed. Callers surface it to clients as a data-unavailable error
// rather than serving a partial list.
var ErrDataUnavailable = errors.New("shelter data unavailable")

// Shelter is one registry record.
type Shelter struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Loader yields the full shelter collection. Implemented by FileStore in
// production and by fixtures in tests.
type Loader interface {
	Load(ctx context.Context) ([]Shelter, error)
}
