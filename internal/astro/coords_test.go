package astro

import (
	"math"
	"testing"
	"time"
)

func TestLocalSiderealTime_J2000Epoch(t *testing.T) {
	// At the J2000 epoch with longitude 0 the linear model reduces to its
	// anchor constant.
	got := LocalSiderealTime(J2000, 0)
	if math.Abs(got-280.16) > 1e-9 {
		t.Errorf("LST at J2000, lon=0 = %v, want 280.16", got)
	}
}

func TestLocalSiderealTime_LongitudeOffset(t *testing.T) {
	testTime := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	lst0 := LocalSiderealTime(testTime, 0)
	lst90 := LocalSiderealTime(testTime, 90)

	want := math.Mod(lst0+90, 360)
	if math.Abs(lst90-want) > 1e-9 {
		t.Errorf("LST at lon=90 = %v, want %v", lst90, want)
	}
}

func TestLocalSiderealTime_Range(t *testing.T) {
	times := []time.Time{
		time.Date(1987, 4, 10, 19, 21, 0, 0, time.UTC),
		J2000,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2038, 11, 30, 23, 59, 59, 0, time.UTC),
	}

	for _, tt := range times {
		for lon := -180.0; lon <= 180; lon += 45 {
			lst := LocalSiderealTime(tt, lon)
			if lst < 0 || lst >= 360 {
				t.Errorf("LST out of range at %v, lon=%v: %v", tt, lon, lst)
			}
		}
	}
}

func TestLocalSiderealTime_Monotonic(t *testing.T) {
	// For a fixed longitude, sidereal time advances monotonically modulo the
	// 360 wraparound. Track the unwrapped angle across one day of steps.
	start := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	prev := LocalSiderealTime(start, -117)
	unwrapped := prev

	for i := 1; i <= 24*60; i++ {
		lst := LocalSiderealTime(start.Add(time.Duration(i)*time.Minute), -117)

		step := lst - prev
		if step < 0 {
			step += 360
		}
		if step <= 0 {
			t.Fatalf("sidereal time not increasing at step %d: prev=%v curr=%v", i, prev, lst)
		}

		unwrapped += step
		prev = lst
	}

	// One solar day should sweep slightly more than a full turn.
	swept := unwrapped - LocalSiderealTime(start, -117)
	if math.Abs(swept-siderealRateDegPerDay) > 0.01 {
		t.Errorf("swept %v degrees in one day, want ~%v", swept, siderealRateDegPerDay)
	}
}

func TestHourAngle(t *testing.T) {
	tests := []struct {
		name   string
		lstDeg float64
		raDeg  float64
		want   float64
	}{
		{"on meridian", 100, 100, 0},
		{"opposite meridian", 180, 0, 180},
		{"west of meridian", 30, 10, 20},
		{"east of meridian across wrap", 350, 10, -20},
		{"west across wrap", 10, 350, 20},
		{"just past anti-meridian", 190.5, 10, -179.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HourAngle(tt.lstDeg, tt.raDeg)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HourAngle(%v, %v) = %v, want %v", tt.lstDeg, tt.raDeg, got, tt.want)
			}
			if got <= -180 || got > 180 {
				t.Errorf("hour angle %v outside (-180,180]", got)
			}
		})
	}
}

func TestEquatorialToHorizontal_Zenith(t *testing.T) {
	// A target on the meridian with dec = lat stands at the zenith. With
	// lat=0 and lst=ra this is the degenerate geometry called out for the
	// pole/zenith policy: altitude must be 90 and azimuth must still be a
	// finite value in range.
	got := EquatorialToHorizontal(280.16, 0, 0, 280.16)

	if math.Abs(got.AltDeg-90) > 1e-6 {
		t.Errorf("zenith altitude = %v, want 90", got.AltDeg)
	}
	if math.IsNaN(got.AzDeg) || got.AzDeg < 0 || got.AzDeg >= 360 {
		t.Errorf("zenith azimuth = %v, want finite value in [0,360)", got.AzDeg)
	}
}

func TestEquatorialToHorizontal_Polaris(t *testing.T) {
	// Polaris sits within a degree of the celestial pole, so its altitude is
	// approximately the observer latitude at any sidereal time.
	for lst := 0.0; lst < 360; lst += 60 {
		got := EquatorialToHorizontal(37.954, 89.264, 35, lst)
		if math.Abs(got.AltDeg-35) > 1 {
			t.Errorf("Polaris altitude at lst=%v: %v, want ~35", lst, got.AltDeg)
		}
	}
}

func TestEquatorialToHorizontal_SouthernStarNeverRises(t *testing.T) {
	// Dec -60 from 35N peaks at 90 - 35 + (-60) = -5 degrees.
	for lst := 0.0; lst < 360; lst += 15 {
		got := EquatorialToHorizontal(0, -60, 35, lst)
		if got.AltDeg > 0 {
			t.Errorf("star at dec=-60 visible from 35N at lst=%v: alt=%v", lst, got.AltDeg)
		}
	}
}

func TestEquatorialToHorizontal_Ranges(t *testing.T) {
	for ra := 0.0; ra < 360; ra += 30 {
		for dec := -90.0; dec <= 90; dec += 15 {
			for lat := -90.0; lat <= 90; lat += 30 {
				got := EquatorialToHorizontal(ra, dec, lat, 123.456)

				if math.IsNaN(got.AltDeg) || got.AltDeg < -90 || got.AltDeg > 90 {
					t.Fatalf("altitude out of range for ra=%v dec=%v lat=%v: %v", ra, dec, lat, got.AltDeg)
				}
				if math.IsNaN(got.AzDeg) || got.AzDeg < 0 || got.AzDeg >= 360 {
					t.Fatalf("azimuth out of range for ra=%v dec=%v lat=%v: %v", ra, dec, lat, got.AzDeg)
				}
			}
		}
	}
}

func TestEquatorialToHorizontal_Deterministic(t *testing.T) {
	a := EquatorialToHorizontal(213.915, 19.182, 51.477, 87.3)
	b := EquatorialToHorizontal(213.915, 19.182, 51.477, 87.3)

	if a != b {
		t.Errorf("repeated call differs: %+v vs %+v", a, b)
	}
}

func TestEquatorialToHorizontal_PoleInputs(t *testing.T) {
	// Exact-pole declination or latitude must not produce NaN or Inf.
	tests := []struct {
		name          string
		dec, lat, lst float64
	}{
		{"north celestial pole", 90, 45, 100},
		{"south celestial pole", -90, 45, 100},
		{"observer at north pole", 30, 90, 100},
		{"observer at south pole", 30, -90, 100},
		{"both poles aligned", 90, 90, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EquatorialToHorizontal(0, tt.dec, tt.lat, tt.lst)

			if math.IsNaN(got.AltDeg) || math.IsInf(got.AltDeg, 0) {
				t.Errorf("altitude not finite: %v", got.AltDeg)
			}
			if math.IsNaN(got.AzDeg) || math.IsInf(got.AzDeg, 0) {
				t.Errorf("azimuth not finite: %v", got.AzDeg)
			}
			if got.AzDeg < 0 || got.AzDeg >= 360 {
				t.Errorf("azimuth out of range: %v", got.AzDeg)
			}
		})
	}
}

func TestEquatorialToHorizontal_PoleObserverAltitude(t *testing.T) {
	// From the north pole, altitude equals declination (to within the clamp
	// epsilon) for any hour angle.
	for lst := 0.0; lst < 360; lst += 90 {
		got := EquatorialToHorizontal(10, 42, 90, lst)
		if math.Abs(got.AltDeg-42) > 1e-6 {
			t.Errorf("altitude from pole at lst=%v: %v, want 42", lst, got.AltDeg)
		}
	}
}

func TestEquatorialToHorizontal_OnHorizon(t *testing.T) {
	// Lower culmination with lat = dec = 45: the target grazes the horizon
	// and the two altitude terms cancel to within rounding. The result must
	// not land on the visible side of the strict > 0 filter.
	got := EquatorialToHorizontal(0, 45, 45, 180)
	if got.AltDeg > 0 {
		t.Errorf("lower culmination altitude = %v, want <= 0", got.AltDeg)
	}
	if math.Abs(got.AltDeg) > 1e-9 {
		t.Errorf("lower culmination altitude = %v, want ~0", got.AltDeg)
	}
}

func TestEquatorialToHorizontal_AzimuthQuadrants(t *testing.T) {
	tests := []struct {
		name          string
		dec, lat, lst float64
		wantAz        float64
	}{
		{"due north", 45, 0, 0, 0},
		{"due south", -45, 0, 0, 180},
		{"rising in the east", 0, 0, -90, 90},
		{"setting in the west", 0, 0, 90, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EquatorialToHorizontal(0, tt.dec, tt.lat, tt.lst)
			if math.Abs(got.AzDeg-tt.wantAz) > 1e-6 {
				t.Errorf("azimuth = %v, want %v", got.AzDeg, tt.wantAz)
			}
		})
	}
}

func TestNormalizeDeg(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-5, 355},
		{-720, 0},
	}

	for _, tt := range tests {
		got := normalizeDeg(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeDeg(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDegRadConversions(t *testing.T) {
	tests := []struct {
		deg, rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-90, -math.Pi / 2},
	}

	for _, tt := range tests {
		if got := degToRad(tt.deg); math.Abs(got-tt.rad) > 1e-12 {
			t.Errorf("degToRad(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
		if got := radToDeg(tt.rad); math.Abs(got-tt.deg) > 1e-12 {
			t.Errorf("radToDeg(%v) = %v, want %v", tt.rad, got, tt.deg)
		}
	}
}
