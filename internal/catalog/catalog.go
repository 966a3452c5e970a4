// Package catalog provides star and constellation catalogs from multiple
// sources: a built-in bright-star list, YAML files, and PostgreSQL.
package catalog

import (
	"context"
	"errors"
	"fmt"
)

// Validation errors for catalog entries.
var (
	ErrRARange  = errors.New("right ascension out of range [0, 360)")
	ErrDecRange = errors.New("declination out of range [-90, 90]")
)

// Star is an immutable catalog entry with J2000 equatorial coordinates.
// The visibility pipeline never mutates stars; computed positions live in
// separate result values.
type Star struct {
	HipID         int     // Hipparcos identifier (0 if unknown)
	Name          string  // Common name (may be empty)
	RADeg         float64 // Right ascension in degrees, [0,360)
	DecDeg        float64 // Declination in degrees, [-90,90]
	Mag           float64 // Apparent visual magnitude (lower = brighter)
	SpectralClass string  // e.g. "A1V" (may be empty)
}

// DisplayName returns the common name, or a HIP designation when unnamed.
func (s Star) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	if s.HipID != 0 {
		return fmt.Sprintf("HIP %d", s.HipID)
	}
	return "unnamed"
}

// Validate checks the coordinate ranges of the entry.
func (s Star) Validate() error {
	if s.RADeg < 0 || s.RADeg >= 360 {
		return fmt.Errorf("star %s: %w", s.DisplayName(), ErrRARange)
	}
	if s.DecDeg < -90 || s.DecDeg > 90 {
		return fmt.Errorf("star %s: %w", s.DisplayName(), ErrDecRange)
	}
	return nil
}

// Line connects two named stars in a constellation figure.
type Line struct {
	From string
	To   string
}

// Constellation is a named star figure.
type Constellation struct {
	Name  string // e.g. "Orion"
	Abbr  string // IAU three-letter abbreviation, e.g. "Ori"
	Lines []Line
}

// Source supplies an ordered star sequence and constellation figures.
// Implementations must return stars in a stable order; the visibility
// pipeline preserves that order in its results.
type Source interface {
	// Name identifies the source for display and logging.
	Name() string

	// Stars returns the full star list in catalog order.
	Stars(ctx context.Context) ([]Star, error)

	// Constellations returns the constellation figures.
	Constellations(ctx context.Context) ([]Constellation, error)
}

// Memory is an in-memory Source, used for the built-in catalog, parsed
// catalog files, and test fixtures.
type Memory struct {
	name           string
	stars          []Star
	constellations []Constellation
}

// NewMemory creates an in-memory source with the given contents.
func NewMemory(name string, stars []Star, constellations []Constellation) *Memory {
	return &Memory{name: name, stars: stars, constellations: constellations}
}

// Name implements Source.
func (m *Memory) Name() string { return m.name }

// Stars implements Source. The returned slice is a copy; callers may not
// mutate catalog contents through it.
func (m *Memory) Stars(_ context.Context) ([]Star, error) {
	out := make([]Star, len(m.stars))
	copy(out, m.stars)
	return out, nil
}

// Constellations implements Source.
func (m *Memory) Constellations(_ context.Context) ([]Constellation, error) {
	out := make([]Constellation, len(m.constellations))
	copy(out, m.constellations)
	return out, nil
}
