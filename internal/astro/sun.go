package astro

import (
	"math"
	"time"
)

// SunPosition calculates the apparent equatorial coordinates of the Sun.
// Uses a simplified solar ephemeris based on the Astronomical Almanac.
// Accuracy: ~0.01 degrees, sufficient for twilight and separation checks.
func SunPosition(t time.Time) (raDeg, decDeg float64) {
	// Julian centuries from J2000.0
	T := DaysSinceJ2000(t) / 36525.0

	// Mean longitude of the Sun (degrees)
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	L0 = normalizeDeg(L0)

	// Mean anomaly of the Sun (degrees)
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T
	M = normalizeDeg(M)
	Mrad := degToRad(M)

	// Sun's equation of center (degrees)
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	// True longitude, then apparent longitude (aberration and nutation)
	sunLon := L0 + C
	omega := 125.04 - 1934.136*T
	sunLonApp := sunLon - 0.00569 - 0.00478*math.Sin(degToRad(omega))

	// Mean obliquity of the ecliptic, corrected
	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := eps0 + 0.00256*math.Cos(degToRad(omega))

	sunLonRad := degToRad(sunLonApp)
	epsRad := degToRad(eps)

	ra := math.Atan2(math.Cos(epsRad)*math.Sin(sunLonRad), math.Cos(sunLonRad))
	raDeg = radToDeg(ra)
	if raDeg < 0 {
		raDeg += 360
	}

	decDeg = radToDeg(math.Asin(math.Sin(epsRad) * math.Sin(sunLonRad)))

	return raDeg, decDeg
}

// SunAltitude returns the Sun's altitude in degrees for an observer and time.
func SunAltitude(obs Observer, t time.Time) float64 {
	ra, dec := SunPosition(t)
	lst := LocalSiderealTime(t, obs.LonDeg)
	return EquatorialToHorizontal(ra, dec, obs.LatDeg, lst).AltDeg
}

// AngularSeparation calculates the angular separation between two points on
// the celestial sphere. All coordinates in degrees.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	ra1Rad := degToRad(ra1)
	dec1Rad := degToRad(dec1)
	ra2Rad := degToRad(ra2)
	dec2Rad := degToRad(dec2)

	// Haversine form, stable for small separations
	dRA := ra2Rad - ra1Rad
	dDec := dec2Rad - dec1Rad

	a := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(dec1Rad)*math.Cos(dec2Rad)*math.Sin(dRA/2)*math.Sin(dRA/2)
	if a > 1 {
		a = 1
	}

	return radToDeg(2 * math.Asin(math.Sqrt(a)))
}

// TwilightTier categorizes the darkness of the sky from the Sun's altitude.
type TwilightTier int

const (
	TwilightDay          TwilightTier = iota // Sun above horizon
	TwilightCivil                            // Sun 0 to -6 degrees
	TwilightNautical                         // Sun -6 to -12 degrees
	TwilightAstronomical                     // Sun -12 to -18 degrees
	TwilightNight                            // Sun below -18 degrees
)

// String returns a display name for the tier.
func (tt TwilightTier) String() string {
	switch tt {
	case TwilightDay:
		return "daylight"
	case TwilightCivil:
		return "civil twilight"
	case TwilightNautical:
		return "nautical twilight"
	case TwilightAstronomical:
		return "astronomical twilight"
	case TwilightNight:
		return "night"
	default:
		return "unknown"
	}
}

// GetTwilightTier returns the tier for a given solar altitude.
func GetTwilightTier(sunAltDeg float64) TwilightTier {
	switch {
	case sunAltDeg > 0:
		return TwilightDay
	case sunAltDeg > -6:
		return TwilightCivil
	case sunAltDeg > -12:
		return TwilightNautical
	case sunAltDeg > -18:
		return TwilightAstronomical
	default:
		return TwilightNight
	}
}
