package astro

import (
	"math"
	"time"
)

// Window represents a rise-transit-set cycle for a fixed equatorial target.
type Window struct {
	Rise        time.Time // Time the target crosses the horizon upward
	Transit     time.Time // Time the target crosses the meridian (highest point)
	Set         time.Time // Time the target crosses the horizon downward
	MaxAltDeg   float64   // Altitude at transit
	Circumpolar bool      // Target never sets for this observer
	NeverRises  bool      // Target never rises for this observer
}

// RiseSet computes the rise, transit, and set times for a fixed RA/Dec target,
// relative to a reference instant. The returned transit is the first meridian
// crossing at or after ref; rise may precede ref when the target is already up.
//
// Because stars are fixed on the celestial sphere, the horizon crossings
// follow directly from the hour-angle identity cos(H0) = -tan(lat)·tan(dec);
// no sampling or interpolation is involved. Circumpolar and never-rising
// targets are reported via the corresponding flags with zero times.
func RiseSet(raDeg, decDeg float64, obs Observer, ref time.Time) Window {
	lat := degToRad(clampPole(obs.LatDeg))
	dec := degToRad(clampPole(decDeg))

	// Altitude at upper culmination: 90 - |lat - dec|.
	maxAlt := 90 - math.Abs(obs.LatDeg-decDeg)

	cosH0 := -math.Tan(lat) * math.Tan(dec)
	if cosH0 < -1 {
		return Window{Transit: nextTransit(raDeg, obs, ref), MaxAltDeg: maxAlt, Circumpolar: true}
	}
	if cosH0 > 1 {
		return Window{MaxAltDeg: maxAlt, NeverRises: true}
	}

	// Semi-diurnal arc in degrees of hour angle.
	h0 := radToDeg(math.Acos(cosH0))

	transit := nextTransit(raDeg, obs, ref)
	rise := transit.Add(-siderealDuration(h0))
	set := transit.Add(siderealDuration(h0))

	return Window{
		Rise:      rise,
		Transit:   transit,
		Set:       set,
		MaxAltDeg: maxAlt,
	}
}

// nextTransit returns the first time at or after ref when the local sidereal
// time equals the target's right ascension.
func nextTransit(raDeg float64, obs Observer, ref time.Time) time.Time {
	lst := LocalSiderealTime(ref, obs.LonDeg)
	delta := normalizeDeg(raDeg - lst)
	return ref.Add(siderealDuration(delta))
}

// siderealDuration converts an angle swept by the sidereal rotation into
// elapsed wall-clock time.
func siderealDuration(deg float64) time.Duration {
	days := deg / siderealRateDegPerDay
	return time.Duration(days * 86400 * float64(time.Second))
}
