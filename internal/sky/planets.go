package sky

import (
	"fmt"
	"time"

	"github.com/litescript/ls-stargazer/internal/astro"
)

// VisiblePlanet pairs a computed planet position with its horizontal
// coordinates for the observer.
type VisiblePlanet struct {
	Body     astro.PlanetPosition
	Position astro.HorizontalCoord
}

// VisiblePlanets returns the major planets above the horizon and at or
// below the magnitude limit, ordered by distance from the Sun. The same
// horizon and magnitude rules apply as for stars.
func VisiblePlanets(obs astro.Observer, t time.Time, magLimit float64) ([]VisiblePlanet, error) {
	if err := obs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observer: %w", err)
	}

	lst := astro.LocalSiderealTime(t, obs.LonDeg)

	var visible []VisiblePlanet
	for _, pp := range astro.PlanetPositions(t) {
		if pp.Mag > magLimit {
			continue
		}
		pos := astro.EquatorialToHorizontal(pp.RADeg, pp.DecDeg, obs.LatDeg, lst)
		if pos.AltDeg <= 0 {
			continue
		}
		visible = append(visible, VisiblePlanet{Body: pp, Position: pos})
	}

	return visible, nil
}
