// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package shelter

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"shelterscout/internal/metrics"
)

// FileStore reads the shelter registry from a CSV file with columns
// name, lat, lng. Municipal exports are sometimes Shift_JIS encoded;
// the store decodes UTF-8 first and falls back to Shift_JIS when the
// bytes are not valid UTF-8.
type FileStore struct {
	path   string
	logger zerolog.Logger
}

// NewFileStore creates a store reading from the given CSV path.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFileStore(path string, logger zerolog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger.With().Str("component", "shelter").Logger(),
	}
}

// Load reads and parses the registry. Any failure, from a missing file
// to a malformed row, is wrapped in ErrDataUnavailable.
func (s *FileStore) Load(ctx context.Context) ([]Shelter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		metrics.ShelterLoads.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: read %s: %v", ErrDataUnavailable, s.path, err)
	}

	shelters, err := parseCSV(decode(raw))
	if err != nil {
		metrics.ShelterLoads.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: parse %s: %v", ErrDataUnavailable, s.path, err)
	}

	metrics.ShelterLoads.WithLabelValues("ok").Inc()
	s.logger.Debug().Int("shelters", len(shelters)).Msg("registry loaded")
	return shelters, nil
}

// decode returns a reader over the raw bytes, transcoding from Shift_JIS
// when the content is not valid UTF-8.
func decode(raw []byte) io.Reader {
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), japanese.ShiftJIS.NewDecoder())
}

func parseCSV(r io.Reader) ([]Shelter, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %v", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"name", "lat", "lng"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var shelters []Shelter
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[cols["lat"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid lat: %v", line, err)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(record[cols["lng"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid lng: %v", line, err)
		}

		shelters = append(shelters, Shelter{
			Name: strings.TrimSpace(record[cols["name"]]),
			Lat:  lat,
			Lng:  lng,
		})
	}

	return shelters, nil
}
