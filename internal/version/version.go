// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Parallel visibility pass, PostgreSQL catalog source, JSON export
// 0.3.0 - Planet positions and magnitudes, rise/transit/set windows
// 0.2.0 - YAML catalog files, constellation figures, twilight tiers
// 0.1.0 - Initial release: visibility engine, TUI sky view, headless summary
