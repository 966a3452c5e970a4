// Package sky runs the visibility pipeline: it joins a star catalog with an
// observer and an instant, and answers which entries are above the horizon.
package sky

import (
	"fmt"
	"time"

	"github.com/litescript/ls-stargazer/internal/astro"
	"github.com/litescript/ls-stargazer/internal/catalog"
)

// VisibleStar pairs a catalog entry with its computed horizontal position.
// The catalog entry is carried by value and never mutated.
type VisibleStar struct {
	Star     catalog.Star
	Position astro.HorizontalCoord
}

// Report summarizes one visibility pass over a catalog.
type Report struct {
	Total      int     // Catalog rows examined
	Candidates int     // Valid rows at or below the magnitude limit
	Skipped    int     // Rows dropped for invalid coordinates
	LSTDeg     float64 // Local sidereal time used for the pass
}

// VisibleStars filters a catalog to the entries visible to the observer at
// the given instant: apparent magnitude at or below magLimit and altitude
// strictly above zero. Results keep the catalog's order.
//
// An invalid observer fails the whole query. An invalid catalog row only
// skips that row; the skip is counted in the report so a noisy catalog is
// visible to the caller without aborting the pass.
func VisibleStars(stars []catalog.Star, obs astro.Observer, t time.Time, magLimit float64) ([]VisibleStar, Report, error) {
	if err := obs.Validate(); err != nil {
		return nil, Report{}, fmt.Errorf("invalid observer: %w", err)
	}

	// One sidereal time for the whole pass. Every star in a single query is
	// evaluated against the same sky, regardless of how long the loop takes.
	lst := astro.LocalSiderealTime(t, obs.LonDeg)
	report := Report{Total: len(stars), LSTDeg: lst}

	visible := make([]VisibleStar, 0, len(stars))
	for _, star := range stars {
		vs, status := evalStar(star, obs, lst, magLimit)
		switch status {
		case statusSkipped:
			report.Skipped++
		case statusTooFaint:
			// Not a candidate, not an error.
		case statusBelowHorizon:
			report.Candidates++
		case statusVisible:
			report.Candidates++
			visible = append(visible, vs)
		}
	}

	return visible, report, nil
}

// starStatus is the outcome of evaluating one catalog row.
type starStatus int

const (
	statusSkipped starStatus = iota
	statusTooFaint
	statusBelowHorizon
	statusVisible
)

// evalStar applies the full per-star pipeline: row validation, magnitude
// cut, coordinate transformation, horizon cut. Both the sequential and the
// parallel passes route through here so their results are bit-identical.
func evalStar(star catalog.Star, obs astro.Observer, lstDeg, magLimit float64) (VisibleStar, starStatus) {
	if err := star.Validate(); err != nil {
		return VisibleStar{}, statusSkipped
	}
	if star.Mag > magLimit {
		return VisibleStar{}, statusTooFaint
	}

	pos := astro.EquatorialToHorizontal(star.RADeg, star.DecDeg, obs.LatDeg, lstDeg)
	if pos.AltDeg <= 0 {
		return VisibleStar{}, statusBelowHorizon
	}

	return VisibleStar{Star: star, Position: pos}, statusVisible
}
