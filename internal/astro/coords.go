// Package astro provides astronomical coordinate transformations and sky math.
package astro

import (
	"math"
	"time"
)

// J2000 is the J2000.0 reference epoch (2000-01-01 12:00:00 UTC), the anchor
// for the linear sidereal-time approximation.
var J2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

const (
	// gmstAtEpochDeg is the Greenwich sidereal angle at the J2000 epoch.
	gmstAtEpochDeg = 280.16

	// siderealRateDegPerDay is the Earth's rotation relative to the stars,
	// in degrees per solar day (slightly more than 360).
	siderealRateDegPerDay = 360.9856235

	// poleEpsilonDeg keeps declination and latitude away from exact ±90°.
	// The azimuth formula has a tan(dec) term that diverges at the celestial
	// poles; clamping keeps every output finite and deterministic instead of
	// letting ±Inf leak into results.
	poleEpsilonDeg = 1e-9
)

// HorizontalCoord is an observer-relative sky position.
type HorizontalCoord struct {
	AltDeg float64 // Altitude above the horizon (-90 to +90, >0 means visible)
	AzDeg  float64 // Compass bearing (0=N, 90=E, 180=S, 270=W), in [0,360)
}

// DaysSinceJ2000 returns the elapsed time since the J2000.0 epoch in days.
// Negative for instants before the epoch.
func DaysSinceJ2000(t time.Time) float64 {
	return t.Sub(J2000).Seconds() / 86400.0
}

// LocalSiderealTime computes the Local Sidereal Time in degrees, in [0,360),
// for a UTC instant and an observer longitude (east positive, [-180,180]).
//
// Uses a linear approximation anchored at J2000.0, accurate to a fraction of
// a degree over several decades around the epoch. That is well inside what
// the horizon filter needs; callers wanting arcsecond sidereal time should
// use a full GMST series instead.
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	days := DaysSinceJ2000(t)
	return normalizeDeg(gmstAtEpochDeg + siderealRateDegPerDay*days + lonDeg)
}

// HourAngle returns the signed hour angle in degrees for a target RA and a
// local sidereal time, mapped into (-180,180]. Negative means the target is
// east of the meridian (still rising), positive means west (setting).
func HourAngle(lstDeg, raDeg float64) float64 {
	ha := normalizeDeg(lstDeg - raDeg)
	if ha > 180 {
		ha -= 360
	}
	return ha
}

// EquatorialToHorizontal converts fixed equatorial coordinates (RA/Dec) to
// observer-relative horizontal coordinates (altitude/azimuth).
//
// Inputs are degrees: raDeg in [0,360), decDeg in [-90,90], latDeg in
// [-90,90]; lstDeg may be any real and is normalized. The transformation is a
// pure function of its inputs; identical inputs always produce identical
// outputs.
//
// Exact-pole inputs (dec or lat at ±90°) are clamped inward by a tiny epsilon
// so azimuth stays finite; at those inputs azimuth is geometrically undefined
// and the returned bearing is a deterministic convention, not a measurement.
func EquatorialToHorizontal(raDeg, decDeg, latDeg, lstDeg float64) HorizontalCoord {
	dec := degToRad(clampPole(decDeg))
	lat := degToRad(clampPole(latDeg))
	ha := degToRad(HourAngle(lstDeg, raDeg))

	// Altitude. The trig sum can overshoot ±1 by a few ULPs; clamp before
	// the inverse sine to avoid a NaN.
	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}
	alt := math.Asin(sinAlt)

	// Azimuth, measured clockwise from north. atan2 resolves the quadrant
	// as long as the hour angle is signed and minimal-magnitude.
	az := math.Atan2(-math.Sin(ha), math.Tan(dec)*math.Cos(lat)-math.Sin(lat)*math.Cos(ha))

	return HorizontalCoord{
		AltDeg: radToDeg(alt),
		AzDeg:  normalizeDeg(radToDeg(az)),
	}
}

// clampPole pulls a degree value at exactly ±90 inward by poleEpsilonDeg.
func clampPole(deg float64) float64 {
	limit := 90.0 - poleEpsilonDeg
	if deg > limit {
		return limit
	}
	if deg < -limit {
		return -limit
	}
	return deg
}

// normalizeDeg normalizes an angle to [0,360).
func normalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
