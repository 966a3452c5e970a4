package astro

import "math"

// AU is the Astronomical Unit in kilometers.
const AU = 149597870.7

// obliquityRad is the Earth's axial tilt at the J2000 epoch, in radians.
const obliquityRad = 23.439291 * math.Pi / 180

// Vec3 represents a 3D vector in an ecliptic or equatorial frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// EclipticToEquatorial rotates an ecliptic XYZ vector into the equatorial
// frame. Units are preserved.
func EclipticToEquatorial(ecl Vec3) Vec3 {
	cosE := math.Cos(obliquityRad)
	sinE := math.Sin(obliquityRad)

	return Vec3{
		X: ecl.X,
		Y: ecl.Y*cosE - ecl.Z*sinE,
		Z: ecl.Y*sinE + ecl.Z*cosE,
	}
}

// EquatorialToEcliptic rotates an equatorial XYZ vector into the ecliptic
// frame.
func EquatorialToEcliptic(eq Vec3) Vec3 {
	cosE := math.Cos(obliquityRad)
	sinE := math.Sin(obliquityRad)

	return Vec3{
		X: eq.X,
		Y: eq.Y*cosE + eq.Z*sinE,
		Z: -eq.Y*sinE + eq.Z*cosE,
	}
}

// RADecFromVector converts an equatorial direction vector to RA/Dec degrees.
// RA is in [0,360), Dec in [-90,90]. The zero vector maps to (0,0).
func RADecFromVector(eq Vec3) (raDeg, decDeg float64) {
	r := eq.Norm()
	if r == 0 {
		return 0, 0
	}

	raDeg = normalizeDeg(radToDeg(math.Atan2(eq.Y, eq.X)))

	sinDec := eq.Z / r
	if sinDec > 1 {
		sinDec = 1
	} else if sinDec < -1 {
		sinDec = -1
	}
	decDeg = radToDeg(math.Asin(sinDec))

	return raDeg, decDeg
}
