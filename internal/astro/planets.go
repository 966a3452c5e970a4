package astro

import (
	"math"
	"time"
)

// Planet identifies one of the major planets.
type Planet int

const (
	Mercury Planet = iota
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// String returns the planet name.
func (p Planet) String() string {
	switch p {
	case Mercury:
		return "Mercury"
	case Venus:
		return "Venus"
	case Mars:
		return "Mars"
	case Jupiter:
		return "Jupiter"
	case Saturn:
		return "Saturn"
	case Uranus:
		return "Uranus"
	case Neptune:
		return "Neptune"
	default:
		return "unknown"
	}
}

// Planets lists the major planets in order from the Sun.
var Planets = []Planet{Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune}

// PlanetPosition is a geocentric planet position with apparent brightness.
type PlanetPosition struct {
	Planet Planet
	RADeg  float64 // Geocentric right ascension, [0,360)
	DecDeg float64 // Geocentric declination, [-90,90]
	Mag    float64 // Approximate apparent visual magnitude
	DistAU float64 // Geocentric distance in AU
}

// orbitalElements are Keplerian mean elements at J2000 with per-century rates.
// Angles in degrees, semi-major axis in AU.
// Source: JPL "Keplerian Elements for Approximate Positions of the Major
// Planets", valid 1800-2050.
type orbitalElements struct {
	a, aDot       float64 // semi-major axis
	e, eDot       float64 // eccentricity
	i, iDot       float64 // inclination
	L, LDot       float64 // mean longitude
	peri, periDot float64 // longitude of perihelion
	node, nodeDot float64 // longitude of ascending node
}

var planetElements = map[Planet]orbitalElements{
	Mercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	Venus: {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	Mars: {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	Jupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	Saturn: {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
	Uranus: {19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939,
		313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589},
	Neptune: {30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372,
		-55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664},
}

// earthElements are the Earth-Moon barycenter elements from the same table.
var earthElements = orbitalElements{
	1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
	100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0,
}

// PlanetPositions computes geocentric RA/Dec and apparent magnitude for all
// major planets at the given instant. Deterministic for a given t.
func PlanetPositions(t time.Time) []PlanetPosition {
	positions := make([]PlanetPosition, 0, len(Planets))
	for _, p := range Planets {
		positions = append(positions, PositionOf(p, t))
	}
	return positions
}

// PositionOf computes the geocentric position of a single planet.
func PositionOf(p Planet, t time.Time) PlanetPosition {
	T := DaysSinceJ2000(t) / 36525.0

	earthHelio := heliocentric(earthElements, T)
	planetHelio := heliocentric(planetElements[p], T)

	geo := planetHelio.Sub(earthHelio)
	raDeg, decDeg := RADecFromVector(EclipticToEquatorial(geo))

	r := planetHelio.Norm()
	delta := geo.Norm()
	sunDist := earthHelio.Norm()

	return PlanetPosition{
		Planet: p,
		RADeg:  raDeg,
		DecDeg: decDeg,
		Mag:    apparentMagnitude(p, r, delta, phaseAngle(r, delta, sunDist)),
		DistAU: delta,
	}
}

// heliocentric computes the heliocentric ecliptic position in AU from mean
// elements at T Julian centuries past J2000.
func heliocentric(el orbitalElements, T float64) Vec3 {
	a := el.a + el.aDot*T
	e := el.e + el.eDot*T
	i := degToRad(el.i + el.iDot*T)
	L := el.L + el.LDot*T
	peri := el.peri + el.periDot*T
	node := el.node + el.nodeDot*T

	// Mean anomaly, mapped into (-180,180] before solving Kepler's equation.
	M := normalizeDeg(L - peri)
	if M > 180 {
		M -= 360
	}

	E := solveKepler(degToRad(M), e)

	// Position in the orbital plane (perihelion along x').
	xp := a * (math.Cos(E) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(E)

	// Rotate by argument of perihelion, inclination, and ascending node.
	omega := degToRad(peri - node)
	nodeRad := degToRad(node)

	cosW, sinW := math.Cos(omega), math.Sin(omega)
	cosN, sinN := math.Cos(nodeRad), math.Sin(nodeRad)
	cosI, sinI := math.Cos(i), math.Sin(i)

	return Vec3{
		X: (cosW*cosN-sinW*sinN*cosI)*xp + (-sinW*cosN-cosW*sinN*cosI)*yp,
		Y: (cosW*sinN+sinW*cosN*cosI)*xp + (-sinW*sinN+cosW*cosN*cosI)*yp,
		Z: sinW*sinI*xp + cosW*sinI*yp,
	}
}

// solveKepler solves E - e*sin(E) = M for the eccentric anomaly by Newton
// iteration. Converges in a handful of steps for planetary eccentricities.
func solveKepler(M, e float64) float64 {
	E := M + e*math.Sin(M)
	for iter := 0; iter < 10; iter++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-9 {
			break
		}
	}
	return E
}

// phaseAngle returns the Sun-planet-Earth angle in degrees from the
// heliocentric distance r, geocentric distance delta, and Earth-Sun
// distance, via the law of cosines.
func phaseAngle(r, delta, sunDist float64) float64 {
	cosPhase := (r*r + delta*delta - sunDist*sunDist) / (2 * r * delta)
	if cosPhase > 1 {
		cosPhase = 1
	} else if cosPhase < -1 {
		cosPhase = -1
	}
	return radToDeg(math.Acos(cosPhase))
}

// apparentMagnitude estimates visual magnitude from distances and phase
// angle, using the classical phase-polynomial fits (Meeus, Astronomical
// Algorithms). The Saturn ring term is omitted.
func apparentMagnitude(p Planet, r, delta, phaseDeg float64) float64 {
	dist := 5 * math.Log10(r*delta)
	i := phaseDeg

	switch p {
	case Mercury:
		return -0.42 + dist + 0.0380*i - 0.000273*i*i + 0.000002*i*i*i
	case Venus:
		return -4.40 + dist + 0.0009*i + 0.000239*i*i - 0.00000065*i*i*i
	case Mars:
		return -1.52 + dist + 0.016*i
	case Jupiter:
		return -9.40 + dist + 0.005*i
	case Saturn:
		return -8.88 + dist + 0.044*i
	case Uranus:
		return -7.19 + dist
	case Neptune:
		return -6.87 + dist
	default:
		return 0
	}
}
