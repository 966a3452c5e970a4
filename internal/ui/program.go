// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-stargazer/internal/astro"
	"github.com/litescript/ls-stargazer/internal/catalog"
	"github.com/litescript/ls-stargazer/internal/logging"
	"github.com/litescript/ls-stargazer/internal/sky"
	"github.com/litescript/ls-stargazer/internal/version"
)

// Config holds everything the interactive view needs.
type Config struct {
	Source      catalog.Source
	Observer    astro.Observer
	MagLimit    float64
	ShowPlanets bool
	Refresh     time.Duration // 0 disables periodic recomputation
	Log         *logging.Logger
}

// Msg types for Bubble Tea
type (
	// TickMsg triggers a periodic visibility recomputation.
	TickMsg time.Time

	// passDoneMsg carries the results of a visibility pass.
	passDoneMsg struct {
		stars   []sky.VisibleStar
		planets []sky.VisiblePlanet
		report  sky.Report
		asOf    time.Time
		err     error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	observer astro.Observer
	refresh  time.Duration
	log      *logging.Logger

	// UI state
	width   int
	height  int
	ready   bool
	skyView SkyViewModel

	magLimit    float64
	showPlanets bool

	// Catalog rows, loaded once at startup
	stars []catalog.Star

	err error
}

// New creates the root UI model. The catalog is read once; visibility is
// recomputed on every tick against the same rows.
func New(cfg Config) (Model, error) {
	log := cfg.Log
	if log == nil {
		log = logging.Discard()
	}
	log = log.WithPrefix("ui")

	ctx := context.Background()
	stars, err := cfg.Source.Stars(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("load catalog: %w", err)
	}
	cons, err := cfg.Source.Constellations(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("load constellations: %w", err)
	}
	log.Info("loaded %d catalog stars from %s", len(stars), cfg.Source.Name())

	return Model{
		observer:    cfg.Observer,
		refresh:     cfg.Refresh,
		log:         log,
		skyView:     NewSkyViewModel(cfg.Observer, cfg.MagLimit).SetConstellations(cons),
		magLimit:    cfg.MagLimit,
		showPlanets: cfg.ShowPlanets,
		stars:       stars,
	}, nil
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(cfg Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init schedules the first visibility pass and, if configured, the refresh
// ticker.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.computePass(time.Now())}
	if m.refresh > 0 {
		cmds = append(cmds, tick(m.refresh))
	}
	return tea.Batch(cmds...)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// computePass runs one visibility pass off the UI goroutine.
func (m Model) computePass(asOf time.Time) tea.Cmd {
	stars := m.stars
	obs := m.observer
	limit := m.magLimit
	wantPlanets := m.showPlanets

	return func() tea.Msg {
		visible, report, err := sky.VisibleStars(stars, obs, asOf, limit)
		if err != nil {
			return passDoneMsg{err: err}
		}

		var planets []sky.VisiblePlanet
		if wantPlanets {
			planets, err = sky.VisiblePlanets(obs, asOf, limit)
			if err != nil {
				return passDoneMsg{err: err}
			}
		}

		return passDoneMsg{stars: visible, planets: planets, report: report, asOf: asOf}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.skyView = m.skyView.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.magLimit += 0.5
			return m, m.computePass(time.Now())
		case "-", "_":
			m.magLimit -= 0.5
			return m, m.computePass(time.Now())
		case "p":
			m.showPlanets = !m.showPlanets
			return m, m.computePass(time.Now())
		case "r":
			return m, m.computePass(time.Now())
		}

		var cmd tea.Cmd
		m.skyView, cmd = m.skyView.Update(msg)
		return m, cmd

	case TickMsg:
		return m, tea.Batch(m.computePass(time.Time(msg)), tick(m.refresh))

	case passDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.log.Error("visibility pass failed: %v", msg.err)
			return m, nil
		}
		m.err = nil
		m.skyView = m.skyView.UpdateData(msg.stars, msg.planets, msg.report, msg.asOf, m.magLimit)
		return m, nil

	default:
		var cmd tea.Cmd
		m.skyView, cmd = m.skyView.Update(msg)
		return m, cmd
	}
}

// View renders the active view.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		return errStyle.Render(fmt.Sprintf("error: %v\n\npress q to quit", m.err))
	}

	view := m.skyView.View()
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("60")).
		Render(fmt.Sprintf("ls-stargazer %s | j/k focus  l labels  c lines  +/- mag  p planets  r refresh  q quit", version.Version))

	return view + "\n" + help
}
