package astro

import "errors"

// Observer validation errors. These apply to the whole query: a bad observer
// fails fast before any catalog entry is transformed.
var (
	ErrLatitudeRange  = errors.New("latitude out of range [-90, 90]")
	ErrLongitudeRange = errors.New("longitude out of range [-180, 180]")
)

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// Validate checks that the observer coordinates are within range.
// Longitude uses the east-positive [-180, 180] convention throughout.
func (o Observer) Validate() error {
	if o.LatDeg < -90 || o.LatDeg > 90 {
		return ErrLatitudeRange
	}
	if o.LonDeg < -180 || o.LonDeg > 180 {
		return ErrLongitudeRange
	}
	return nil
}
