package sky

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/litescript/ls-stargazer/internal/astro"
)

// Snapshot is the machine-readable result of one visibility query.
type Snapshot struct {
	Source      string         `json:"source"`
	GeneratedAt time.Time      `json:"generated_at"`
	Observer    SnapshotSite   `json:"observer"`
	LSTDeg      float64        `json:"lst_deg"`
	SunAltDeg   float64        `json:"sun_alt_deg"`
	Twilight    string         `json:"twilight"`
	MagLimit    float64        `json:"mag_limit"`
	Total       int            `json:"catalog_total"`
	Skipped     int            `json:"catalog_skipped"`
	Stars       []SnapshotStar `json:"stars"`
	Planets     []SnapshotStar `json:"planets,omitempty"`
}

// SnapshotSite is the observer block of a snapshot.
type SnapshotSite struct {
	Name   string  `json:"name,omitempty"`
	LatDeg float64 `json:"lat_deg"`
	LonDeg float64 `json:"lon_deg"`
}

// SnapshotStar is one visible body in a snapshot.
type SnapshotStar struct {
	Name   string  `json:"name"`
	Mag    float64 `json:"mag"`
	AltDeg float64 `json:"alt_deg"`
	AzDeg  float64 `json:"az_deg"`
}

// BuildSnapshot assembles a snapshot from a finished visibility pass.
// Star order in the snapshot is the pass's order, which is catalog order.
func BuildSnapshot(source string, obs astro.Observer, t time.Time, magLimit float64, stars []VisibleStar, planets []VisiblePlanet, report Report) Snapshot {
	sunAlt := astro.SunAltitude(obs, t)

	snap := Snapshot{
		Source:      source,
		GeneratedAt: t,
		Observer:    SnapshotSite{Name: obs.Name, LatDeg: obs.LatDeg, LonDeg: obs.LonDeg},
		LSTDeg:      report.LSTDeg,
		SunAltDeg:   sunAlt,
		Twilight:    astro.GetTwilightTier(sunAlt).String(),
		MagLimit:    magLimit,
		Total:       report.Total,
		Skipped:     report.Skipped,
		Stars:       make([]SnapshotStar, 0, len(stars)),
	}

	for _, vs := range stars {
		snap.Stars = append(snap.Stars, SnapshotStar{
			Name:   vs.Star.DisplayName(),
			Mag:    vs.Star.Mag,
			AltDeg: vs.Position.AltDeg,
			AzDeg:  vs.Position.AzDeg,
		})
	}
	for _, vp := range planets {
		snap.Planets = append(snap.Planets, SnapshotStar{
			Name:   vp.Body.Planet.String(),
			Mag:    vp.Body.Mag,
			AltDeg: vp.Position.AltDeg,
			AzDeg:  vp.Position.AzDeg,
		})
	}

	return snap
}

// WriteJSON writes a snapshot as indented JSON.
func WriteJSON(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// WriteSummaryTable writes a human-readable visibility summary.
func WriteSummaryTable(w io.Writer, snap Snapshot) error {
	site := snap.Observer.Name
	if site == "" {
		site = fmt.Sprintf("%.4f, %.4f", snap.Observer.LatDeg, snap.Observer.LonDeg)
	}

	fmt.Fprintf(w, "Sky over %s at %s\n", site, snap.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(w, "LST %.2f°  sun %.1f° (%s)  limit mag %.1f\n", snap.LSTDeg, snap.SunAltDeg, snap.Twilight, snap.MagLimit)
	fmt.Fprintf(w, "%d of %d catalog stars visible", len(snap.Stars), snap.Total)
	if snap.Skipped > 0 {
		fmt.Fprintf(w, " (%d invalid rows skipped)", snap.Skipped)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMAG\tALT\tAZ\tDIR")
	for _, s := range snap.Stars {
		fmt.Fprintf(tw, "%s\t%.2f\t%.1f°\t%.1f°\t%s\n", s.Name, s.Mag, s.AltDeg, s.AzDeg, compassPoint(s.AzDeg))
	}
	for _, p := range snap.Planets {
		fmt.Fprintf(tw, "%s*\t%.2f\t%.1f°\t%.1f°\t%s\n", p.Name, p.Mag, p.AltDeg, p.AzDeg, compassPoint(p.AzDeg))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(snap.Planets) > 0 {
		fmt.Fprintln(w, "\n* planet")
	}
	return nil
}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// compassPoint maps an azimuth to the nearest 16-point compass direction.
func compassPoint(azDeg float64) string {
	idx := int((azDeg+11.25)/22.5) % 16
	return compassPoints[idx]
}
