// Command ls-stargazer shows which catalog stars are visible from a given
// place and time, as a terminal UI or as headless text/JSON output.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/litescript/ls-stargazer/internal/astro"
	"github.com/litescript/ls-stargazer/internal/catalog"
	"github.com/litescript/ls-stargazer/internal/logging"
	"github.com/litescript/ls-stargazer/internal/sky"
	"github.com/litescript/ls-stargazer/internal/ui"
	"github.com/litescript/ls-stargazer/internal/version"
)

// CLI flags
var (
	latDeg        float64
	lonDeg        float64
	siteName      string
	whenStr       string
	magLimit      float64
	catalogPath   string
	dbConn        string
	dbInit        bool
	showPlanets   bool
	summaryMode   bool
	jsonPath      string
	watchInterval time.Duration
	workers       int
	showVersion   bool
)

const (
	defaultRefresh = 30 * time.Second
	minWatch       = 1 * time.Second
)

// Accepted layouts for the -time flag, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func main() {
	flag.Float64Var(&latDeg, "lat", 0, "Observer latitude in degrees (north positive)")
	flag.Float64Var(&lonDeg, "lon", 0, "Observer longitude in degrees (east positive)")
	flag.StringVar(&siteName, "site", "", "Observer site name for display")
	flag.StringVar(&whenStr, "time", "", "Observation time, UTC (RFC3339 or '2006-01-02 15:04'; default now)")
	flag.Float64Var(&magLimit, "mag-limit", 6.0, "Faintest apparent magnitude to include")
	flag.StringVar(&catalogPath, "catalog", "", "YAML catalog file (default: built-in bright stars)")
	flag.StringVar(&dbConn, "db", "", "PostgreSQL connection string for the catalog")
	flag.BoolVar(&dbInit, "db-init", false, "Create the database schema and seed it with the built-in catalog, then exit")
	flag.BoolVar(&showPlanets, "planets", false, "Include the major planets")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.StringVar(&jsonPath, "json", "", "Export JSON snapshot to file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 30s)")
	flag.IntVar(&workers, "workers", 0, "Parallel visibility workers (0 = one per CPU, 1 = sequential)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if showVersion {
		fmt.Println("ls-stargazer " + version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	obs := astro.Observer{LatDeg: latDeg, LonDeg: lonDeg, Name: siteName}
	if err := obs.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// "Default now" is resolved here, once. Everything below works with an
	// explicit instant.
	when, err := parseWhen(whenStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if dbInit {
		if err := initDatabase(ctx, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	source, cleanup, err := openSource(ctx, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	headless := summaryMode || jsonPath != "" || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		if err := runHeadless(ctx, source, obs, when, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	err = ui.Run(ui.Config{
		Source:      source,
		Observer:    obs,
		MagLimit:    magLimit,
		ShowPlanets: showPlanets,
		Refresh:     defaultRefresh,
		Log:         logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// parseWhen interprets the -time flag. An empty value means the current time.
func parseWhen(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable time %q (want RFC3339 or '2006-01-02 15:04')", s)
}

// openSource selects the catalog source from the flags: PostgreSQL, a YAML
// file, or the built-in bright-star list.
func openSource(ctx context.Context, logger *logging.Logger) (catalog.Source, func(), error) {
	log := logger.WithPrefix("catalog")

	if dbConn != "" {
		pg, err := catalog.OpenPostgres(ctx, dbConn)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using PostgreSQL catalog")
		return pg, func() { _ = pg.Close() }, nil
	}

	if catalogPath != "" {
		src, err := catalog.LoadYAML(catalogPath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("loaded catalog file %s", catalogPath)
		return src, func() {}, nil
	}

	return catalog.Builtin(), func() {}, nil
}

// initDatabase creates the schema and seeds it from the built-in catalog.
func initDatabase(ctx context.Context, logger *logging.Logger) error {
	if dbConn == "" {
		return fmt.Errorf("-db-init requires -db")
	}

	pg, err := catalog.OpenPostgres(ctx, dbConn)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.InitSchema(ctx); err != nil {
		return err
	}

	builtin := catalog.Builtin()
	stars, _ := builtin.Stars(ctx)
	constellations, _ := builtin.Constellations(ctx)
	if err := pg.Seed(ctx, stars, constellations); err != nil {
		return err
	}

	logger.WithPrefix("catalog").Info("seeded %d stars, %d constellations", len(stars), len(constellations))
	return nil
}

// runHeadless prints the visibility results once, or repeatedly in watch mode.
func runHeadless(ctx context.Context, source catalog.Source, obs astro.Observer, when time.Time, logger *logging.Logger) error {
	log := logger.WithPrefix("sky")

	stars, err := source.Stars(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	// When following the live sky, the fixed -time flag makes no sense;
	// each iteration observes at its own instant.
	liveClock := watchInterval > 0 && whenStr == ""

	outputOnce := func(t time.Time) error {
		var (
			visible []sky.VisibleStar
			report  sky.Report
			err     error
		)
		if workers == 1 {
			visible, report, err = sky.VisibleStars(stars, obs, t, magLimit)
		} else {
			visible, report, err = sky.VisibleStarsParallel(ctx, stars, obs, t, magLimit, workers)
		}
		if err != nil {
			return err
		}

		var planets []sky.VisiblePlanet
		if showPlanets {
			if planets, err = sky.VisiblePlanets(obs, t, magLimit); err != nil {
				return err
			}
		}

		log.Debug("pass done: %d/%d visible, %d skipped", len(visible), report.Total, report.Skipped)

		snap := sky.BuildSnapshot(source.Name(), obs, t, magLimit, visible, planets, report)

		if jsonPath != "" {
			if jsonPath == "-" {
				if err := sky.WriteJSON(os.Stdout, snap); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(jsonPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				if err := sky.WriteJSON(f, snap); err != nil {
					f.Close()
					return fmt.Errorf("write JSON to file: %w", err)
				}
				if err := f.Close(); err != nil {
					return err
				}
			}
			if !summaryMode {
				return nil
			}
		}

		return sky.WriteSummaryTable(os.Stdout, snap)
	}

	if watchInterval == 0 {
		return outputOnce(when)
	}
	if watchInterval < minWatch {
		watchInterval = minWatch
	}

	if err := outputOnce(when); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			t := when
			if liveClock {
				t = time.Now().UTC()
			}
			if jsonPath != "-" {
				fmt.Println() // Blank line between outputs
			}
			if err := outputOnce(t); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
