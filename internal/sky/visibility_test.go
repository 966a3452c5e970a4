package sky

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-stargazer/internal/astro"
	"github.com/litescript/ls-stargazer/internal/catalog"
)

// At the J2000 epoch an observer at lon 0 sees LST 280.16°, so a star with
// that RA and dec equal to the latitude sits at the zenith.
var (
	epoch    = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	equator  = astro.Observer{LatDeg: 0, LonDeg: 0}
	zenithRA = 280.16
)

func TestVisibleStars_HorizonAndMagnitude(t *testing.T) {
	stars := []catalog.Star{
		{Name: "overhead", RADeg: zenithRA, DecDeg: 0, Mag: 1.0},
		{Name: "antipode", RADeg: 100.16, DecDeg: 0, Mag: 1.0}, // hour angle 180, alt -90
		{Name: "at limit", RADeg: zenithRA, DecDeg: 10, Mag: 6.0},
		{Name: "too faint", RADeg: zenithRA, DecDeg: 20, Mag: 6.01},
	}

	visible, report, err := VisibleStars(stars, equator, epoch, 6.0)
	if err != nil {
		t.Fatalf("VisibleStars() error: %v", err)
	}

	want := []string{"overhead", "at limit"}
	if len(visible) != len(want) {
		t.Fatalf("got %d visible stars, want %d: %+v", len(visible), len(want), visible)
	}
	for i, name := range want {
		if visible[i].Star.Name != name {
			t.Errorf("visible[%d] = %q, want %q", i, visible[i].Star.Name, name)
		}
	}

	if report.Total != 4 {
		t.Errorf("Total = %d, want 4", report.Total)
	}
	if report.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", report.Skipped)
	}
	// "too faint" fails the magnitude cut before the transform, so it is
	// not a candidate; "antipode" is a candidate that failed the horizon cut.
	if report.Candidates != 3 {
		t.Errorf("Candidates = %d, want 3", report.Candidates)
	}
}

func TestVisibleStars_OnHorizonExcluded(t *testing.T) {
	// ra=0, dec=45, lat=45, LST 180 puts the star at its lower culmination,
	// grazing the horizon with altitude zero up to rounding. Strictly above
	// the horizon means on-the-horizon is out.
	obs := astro.Observer{LatDeg: 45, LonDeg: -100.16}

	lst := astro.LocalSiderealTime(epoch, obs.LonDeg)
	if math.Abs(lst-180) > 1e-9 {
		t.Fatalf("fixture broken: LST = %v, want 180", lst)
	}
	pos := astro.EquatorialToHorizontal(0, 45, obs.LatDeg, lst)
	if pos.AltDeg > 0 || math.Abs(pos.AltDeg) > 1e-9 {
		t.Fatalf("fixture broken: altitude = %v, want ~0 and not positive", pos.AltDeg)
	}

	stars := []catalog.Star{{Name: "boundary", RADeg: 0, DecDeg: 45, Mag: 1.0}}
	visible, _, err := VisibleStars(stars, obs, epoch, 6.0)
	if err != nil {
		t.Fatalf("VisibleStars() error: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("star at altitude 0 was reported visible")
	}
}

func TestVisibleStars_SkipsInvalidRows(t *testing.T) {
	stars := []catalog.Star{
		{Name: "good one", RADeg: zenithRA, DecDeg: 10, Mag: 1.0},
		{Name: "bad ra", RADeg: 400, DecDeg: 0, Mag: 1.0},
		{Name: "bad dec", RADeg: 10, DecDeg: 95, Mag: 1.0},
		{Name: "good two", RADeg: zenithRA, DecDeg: -10, Mag: 1.0},
	}

	visible, report, err := VisibleStars(stars, equator, epoch, 6.0)
	if err != nil {
		t.Fatalf("VisibleStars() error: %v", err)
	}

	if report.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", report.Skipped)
	}
	if len(visible) != 2 || visible[0].Star.Name != "good one" || visible[1].Star.Name != "good two" {
		t.Errorf("bad rows disturbed the pass: %+v", visible)
	}
}

func TestVisibleStars_PreservesCatalogOrder(t *testing.T) {
	// All near the zenith and all visible; deliberately not sorted by
	// magnitude or name so any reordering shows up.
	stars := []catalog.Star{
		{Name: "c", RADeg: zenithRA, DecDeg: 5, Mag: 3},
		{Name: "a", RADeg: zenithRA, DecDeg: -5, Mag: 1},
		{Name: "b", RADeg: zenithRA, DecDeg: 15, Mag: 2},
	}

	visible, _, err := VisibleStars(stars, equator, epoch, 6.0)
	if err != nil {
		t.Fatalf("VisibleStars() error: %v", err)
	}
	if len(visible) != 3 {
		t.Fatalf("got %d visible, want 3", len(visible))
	}
	for i, s := range stars {
		if visible[i].Star.Name != s.Name {
			t.Errorf("order changed at %d: got %q, want %q", i, visible[i].Star.Name, s.Name)
		}
	}
}

func TestVisibleStars_InvalidObserverFailsFast(t *testing.T) {
	stars := []catalog.Star{{Name: "any", RADeg: 10, DecDeg: 10, Mag: 1}}

	_, _, err := VisibleStars(stars, astro.Observer{LatDeg: 91}, epoch, 6.0)
	if !errors.Is(err, astro.ErrLatitudeRange) {
		t.Errorf("error = %v, want ErrLatitudeRange", err)
	}

	_, _, err = VisibleStars(stars, astro.Observer{LonDeg: -181}, epoch, 6.0)
	if !errors.Is(err, astro.ErrLongitudeRange) {
		t.Errorf("error = %v, want ErrLongitudeRange", err)
	}
}

func TestVisibleStars_EmptyCatalog(t *testing.T) {
	visible, report, err := VisibleStars(nil, equator, epoch, 6.0)
	if err != nil {
		t.Fatalf("VisibleStars() error: %v", err)
	}
	if len(visible) != 0 || report.Total != 0 {
		t.Errorf("empty catalog produced results: %+v %+v", visible, report)
	}
}

func TestVisibleStars_SharedSiderealTime(t *testing.T) {
	// Every star in a pass must be judged against the same LST; the report
	// carries the value it used.
	_, report, err := VisibleStars(nil, astro.Observer{LonDeg: 45}, epoch, 6.0)
	if err != nil {
		t.Fatalf("VisibleStars() error: %v", err)
	}
	want := astro.LocalSiderealTime(epoch, 45)
	if report.LSTDeg != want {
		t.Errorf("LSTDeg = %v, want %v", report.LSTDeg, want)
	}
}

func TestVisiblePlanets(t *testing.T) {
	obs := astro.Observer{LatDeg: 40, LonDeg: -74}
	when := time.Date(2024, 6, 1, 4, 0, 0, 0, time.UTC)

	planets, err := VisiblePlanets(obs, when, 8.0)
	if err != nil {
		t.Fatalf("VisiblePlanets() error: %v", err)
	}

	for _, vp := range planets {
		if vp.Position.AltDeg <= 0 {
			t.Errorf("%s reported visible below horizon: alt %v", vp.Body.Planet, vp.Position.AltDeg)
		}
		if vp.Body.Mag > 8.0 {
			t.Errorf("%s above magnitude limit: %v", vp.Body.Planet, vp.Body.Mag)
		}
	}

	if _, err := VisiblePlanets(astro.Observer{LatDeg: 100}, when, 8.0); err == nil {
		t.Error("expected error for invalid observer")
	}
}
