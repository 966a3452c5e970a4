package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-stargazer/internal/astro"
	"github.com/litescript/ls-stargazer/internal/catalog"
	"github.com/litescript/ls-stargazer/internal/sky"
)

const (
	// Field of view in degrees
	fovAz = 120.0 // horizontal FOV
	fovEl = 60.0  // vertical FOV

	// Animation
	animDuration  = 400 * time.Millisecond
	animFrameRate = 30 * time.Millisecond

	// Planet glyphs
	glyphPlanet        = '●'
	glyphPlanetFocused = '◉'

	// Planet colors
	colorPlanet        = "#ffd7a8"
	colorPlanetFocused = "229" // bright gold

	// Star glyphs by magnitude
	glyphStarBright  = '✶' // mag < 1.5
	glyphStarMedium  = '✸' // mag 1.5-3.0
	glyphStarDim     = '·' // mag 3.0-4.0
	glyphStarVeryDim = '·' // mag > 4.0
	glyphStarFocused = '◆'

	// Star colors
	colorStarBright  = "255" // bright white
	colorStarMedium  = "250" // medium gray
	colorStarDim     = "244" // dim gray
	colorStarVeryDim = "240" // very dim gray
	colorStarFocused = "229" // bright gold
)

// LabelMode controls how body labels are displayed.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only focused body
	LabelAll                      // All bright stars and planets
)

// labelAllMagCutoff keeps LabelAll readable: only stars at least this bright
// get a label in that mode.
const labelAllMagCutoff = 1.5

// SkyViewModel renders the sky dome with the visible stars and planets.
type SkyViewModel struct {
	width  int
	height int

	// Camera position (center of view)
	camAz float64
	camEl float64

	// Animation state
	animating   bool
	animStartAz float64
	animStartEl float64
	animTargAz  float64
	animTargEl  float64
	animStart   time.Time

	// Focus cycles through the visible stars in catalog order
	focusIdx int

	// Current visibility pass results
	stars   []sky.VisibleStar
	planets []sky.VisiblePlanet
	report  sky.Report
	asOf    time.Time

	observer astro.Observer
	magLimit float64

	// Constellation figures, drawn under the star field when enabled
	constellations []catalog.Constellation
	showCons       bool

	// Label display mode
	labelMode LabelMode
}

// NewSkyViewModel creates a new sky view model.
func NewSkyViewModel(obs astro.Observer, magLimit float64) SkyViewModel {
	return SkyViewModel{
		camAz:     180,
		camEl:     45,
		labelMode: LabelFocused,
		observer:  obs,
		magLimit:  magLimit,
		showCons:  true,
	}
}

// SetConstellations installs the constellation figures to overlay.
func (m SkyViewModel) SetConstellations(cons []catalog.Constellation) SkyViewModel {
	m.constellations = cons
	return m
}

// SetSize updates the viewport size.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData replaces the view's visibility results. Called after each
// recomputation so the canvas always reflects the latest pass.
func (m SkyViewModel) UpdateData(stars []sky.VisibleStar, planets []sky.VisiblePlanet, report sky.Report, asOf time.Time, magLimit float64) SkyViewModel {
	m.stars = stars
	m.planets = planets
	m.report = report
	m.asOf = asOf
	m.magLimit = magLimit

	// If focus is out of bounds, reset
	if m.focusIdx >= len(m.stars) {
		m.focusIdx = 0
	}

	// If not animating, snap camera to focused star
	if !m.animating && len(m.stars) > 0 {
		pos := m.stars[m.focusIdx].Position
		m.camAz = pos.AzDeg
		m.camEl = pos.AltDeg
	}

	return m
}

// animTickMsg is sent during animation
type animTickMsg time.Time

func animTick() tea.Cmd {
	return tea.Tick(animFrameRate, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Update handles messages.
func (m SkyViewModel) Update(msg tea.Msg) (SkyViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			return m.focusPrev()
		case "down", "j":
			return m.focusNext()
		case "l":
			m = m.cycleLabelMode()
		case "c":
			m.showCons = !m.showCons
		}

	case animTickMsg:
		if m.animating {
			return m.updateAnimation()
		}
	}

	return m, nil
}

func (m SkyViewModel) cycleLabelMode() SkyViewModel {
	m.labelMode = (m.labelMode + 1) % 3
	return m
}

func (m SkyViewModel) focusNext() (SkyViewModel, tea.Cmd) {
	if len(m.stars) == 0 {
		return m, nil
	}
	m.focusIdx = (m.focusIdx + 1) % len(m.stars)
	return m.startAnimation()
}

func (m SkyViewModel) focusPrev() (SkyViewModel, tea.Cmd) {
	if len(m.stars) == 0 {
		return m, nil
	}
	m.focusIdx--
	if m.focusIdx < 0 {
		m.focusIdx = len(m.stars) - 1
	}
	return m.startAnimation()
}

func (m SkyViewModel) startAnimation() (SkyViewModel, tea.Cmd) {
	if len(m.stars) == 0 || m.focusIdx >= len(m.stars) {
		return m, nil
	}

	pos := m.stars[m.focusIdx].Position
	m.animating = true
	m.animStartAz = m.camAz
	m.animStartEl = m.camEl
	m.animTargAz = pos.AzDeg
	m.animTargEl = pos.AltDeg
	m.animStart = time.Now()

	return m, animTick()
}

func (m SkyViewModel) updateAnimation() (SkyViewModel, tea.Cmd) {
	elapsed := time.Since(m.animStart)
	t := float64(elapsed) / float64(animDuration)

	if t >= 1.0 {
		// Animation complete
		m.animating = false
		m.camAz = m.animTargAz
		m.camEl = m.animTargEl
		return m, nil
	}

	// Ease-out cubic
	t = 1 - math.Pow(1-t, 3)

	// Interpolate azimuth with wrap-around handling
	m.camAz = lerpAngle(m.animStartAz, m.animTargAz, t)
	m.camEl = lerp(m.animStartEl, m.animTargEl, t)

	return m, animTick()
}

// View renders the sky view.
func (m SkyViewModel) View() string {
	if m.width < 20 || m.height < 10 {
		return "Sky view requires larger terminal"
	}

	// Reserve lines for header and status
	viewHeight := m.height - 4
	viewWidth := m.width

	canvas := m.renderSkyCanvas(viewWidth, viewHeight)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(canvas)
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

func (m SkyViewModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135")) // violet
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))               // muted purple
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPlanet))

	title := titleStyle.Render("Sky View")

	counts := accentStyle.Render(fmt.Sprintf("%d stars", len(m.stars)))
	if len(m.planets) > 0 {
		counts += accentStyle.Render(fmt.Sprintf(" + %d planets", len(m.planets)))
	}

	var labelStr string
	switch m.labelMode {
	case LabelNone:
		labelStr = dimStyle.Render("Labels: off")
	case LabelFocused:
		labelStr = accentStyle.Render("Labels: focus")
	case LabelAll:
		labelStr = accentStyle.Render("Labels: all")
	}

	limit := dimStyle.Render(fmt.Sprintf("mag ≤ %.1f", m.magLimit))
	compass := dimStyle.Render(fmt.Sprintf("Az:%.0f° Alt:%.0f°", m.camAz, m.camEl))

	return fmt.Sprintf("%s | %s | %s | %s | %s", title, counts, labelStr, limit, compass)
}

func (m SkyViewModel) renderStatus() string {
	if len(m.stars) == 0 {
		sunAlt := astro.SunAltitude(m.observer, m.asOf)
		return fmt.Sprintf("No stars visible (%s)", astro.GetTwilightTier(sunAlt))
	}

	if m.focusIdx >= len(m.stars) {
		return ""
	}

	vs := m.stars[m.focusIdx]
	star := vs.Star

	spectral := star.SpectralClass
	if spectral == "" {
		spectral = "-"
	}

	line1 := fmt.Sprintf(">>> %s [%s] mag %.2f | Az:%.0f° Alt:%.0f° | %s",
		star.DisplayName(),
		spectral,
		star.Mag,
		vs.Position.AzDeg,
		vs.Position.AltDeg,
		m.describeWindow(star.RADeg, star.DecDeg),
	)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	status := accentStyle.Render(line1)

	lstLine := fmt.Sprintf("    LST %.2f°  |  %d/%d visible", m.report.LSTDeg, len(m.stars), m.report.Total)
	if m.report.Skipped > 0 {
		lstLine += fmt.Sprintf("  |  %d rows skipped", m.report.Skipped)
	}
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPlanet))
	status += "\n" + dimStyle.Render(lstLine)

	return status
}

// describeWindow summarizes the focused star's rise/set situation.
func (m SkyViewModel) describeWindow(raDeg, decDeg float64) string {
	w := astro.RiseSet(raDeg, decDeg, m.observer, m.asOf)
	switch {
	case w.Circumpolar:
		return "circumpolar"
	case w.NeverRises:
		return "never rises"
	default:
		return fmt.Sprintf("sets %s", w.Set.UTC().Format("15:04"))
	}
}

// bodyPos tracks a drawn body for label rendering
type bodyPos struct {
	x, y       int
	name       string
	isFocused  bool
	bright     bool // labelled in LabelAll mode
	labelStart int
	labelEnd   int
}

func (m SkyViewModel) renderSkyCanvas(width, height int) string {
	// Initialize canvas with empty space (very dark background)
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = "236" // very dark background
		}
	}

	horizonY := height - 2

	// Constellation lines go down first so stars draw over them
	if m.showCons {
		m.drawConstellations(canvas, colors, width, horizonY)
	}

	var positions []bodyPos

	// Draw visible stars from the current pass
	for i, vs := range m.stars {
		x, y, visible := m.projectToScreen(vs.Position.AzDeg, vs.Position.AltDeg, width, height)
		if !visible {
			continue
		}
		if x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}

		isFocused := i == m.focusIdx

		glyph, color := starGlyph(vs.Star.Mag)
		if isFocused {
			glyph, color = glyphStarFocused, colorStarFocused
		}
		canvas[y][x] = glyph
		colors[y][x] = color

		if isFocused || vs.Star.Mag < labelAllMagCutoff {
			positions = append(positions, bodyPos{
				x:         x,
				y:         y,
				name:      vs.Star.DisplayName(),
				isFocused: isFocused,
				bright:    vs.Star.Mag < labelAllMagCutoff,
			})
		}
	}

	// Draw planets over the star field
	for _, vp := range m.planets {
		x, y, visible := m.projectToScreen(vp.Position.AzDeg, vp.Position.AltDeg, width, height)
		if !visible {
			continue
		}
		if x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}

		canvas[y][x] = glyphPlanet
		colors[y][x] = colorPlanet

		positions = append(positions, bodyPos{
			x:      x,
			y:      y,
			name:   vp.Body.Planet.String(),
			bright: true,
		})
	}

	// Draw horizon line (purple tint)
	for x := 0; x < width; x++ {
		canvas[horizonY][x] = '─'
		colors[horizonY][x] = "60" // muted purple
	}

	// Draw cardinal directions on horizon
	m.drawCardinal(canvas, colors, width, height, "N", 0)
	m.drawCardinal(canvas, colors, width, height, "E", 90)
	m.drawCardinal(canvas, colors, width, height, "S", 180)
	m.drawCardinal(canvas, colors, width, height, "W", 270)

	// Draw labels based on label mode
	m.renderLabels(canvas, colors, width, horizonY, positions)

	// Observer marker at bottom center
	siteX := width / 2
	siteY := height - 1
	if siteY >= 0 && siteX >= 0 && siteX < width {
		canvas[siteY][siteX] = '▲'
		colors[siteY][siteX] = "46"
	}

	// Render canvas to string
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// drawConstellations overlays the constellation figures. A segment is drawn
// only when both endpoint stars are in the current visible set; figures
// straddling the horizon show their above-horizon edges only.
func (m SkyViewModel) drawConstellations(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY int) {
	byName := make(map[string]astro.HorizontalCoord, len(m.stars))
	for _, vs := range m.stars {
		byName[vs.Star.Name] = vs.Position
	}

	for _, con := range m.constellations {
		for _, line := range con.Lines {
			from, okFrom := byName[line.From]
			to, okTo := byName[line.To]
			if !okFrom || !okTo {
				continue
			}

			x0, y0, v0 := m.projectToScreen(from.AzDeg, from.AltDeg, width, horizonY+2)
			x1, y1, v1 := m.projectToScreen(to.AzDeg, to.AltDeg, width, horizonY+2)
			if !v0 || !v1 {
				continue
			}

			drawSegment(canvas, colors, width, horizonY, x0, y0, x1, y1)
		}
	}
}

// drawSegment paints a faint line between two canvas points, skipping cells
// already holding a glyph.
func drawSegment(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY, x0, y0, x1, y1 int) {
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		return
	}

	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(float64(x1-x0)*t)
		y := y0 + int(float64(y1-y0)*t)

		if x < 0 || x >= width || y < 0 || y >= horizonY {
			continue
		}
		if canvas[y][x] != ' ' {
			continue
		}
		canvas[y][x] = '·'
		colors[y][x] = "60" // muted purple
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// renderLabels draws body labels on the canvas based on label mode.
// The focused label takes priority in overlapping regions.
func (m SkyViewModel) renderLabels(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY int, positions []bodyPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	// Calculate label positions (to the right of the glyph with 1-char gap)
	for i := range positions {
		pos := &positions[i]
		pos.labelStart = pos.x + 2
		labelLen := len([]rune(pos.name))
		if pos.isFocused {
			labelLen += 2 // "◄ " prefix
		}
		pos.labelEnd = pos.labelStart + labelLen
	}

	// Track which x positions on each row are claimed by the focused label so
	// it wins over non-focused ones.
	focusedClaims := make(map[int]map[int]bool) // y -> x -> claimed

	for _, pos := range positions {
		if !pos.isFocused {
			continue
		}
		if focusedClaims[pos.y] == nil {
			focusedClaims[pos.y] = make(map[int]bool)
		}
		for x := pos.labelStart; x < pos.labelEnd; x++ {
			focusedClaims[pos.y][x] = true
		}
	}

	for _, pos := range positions {
		showLabel := false
		switch m.labelMode {
		case LabelFocused:
			showLabel = pos.isFocused
		case LabelAll:
			showLabel = pos.isFocused || pos.bright
		}
		if !showLabel {
			continue
		}

		labelColor := lipgloss.Color(colorStarDim)
		if pos.isFocused {
			labelColor = colorStarFocused
		}

		// Arrow prefix points back at the focused glyph: "◄ NAME"
		labelText := pos.name
		if pos.isFocused {
			labelText = "◄ " + pos.name
		}

		for i, r := range []rune(labelText) {
			x := pos.labelStart + i
			if x < 0 || x >= width || pos.y < 0 || pos.y >= horizonY {
				continue
			}
			if !pos.isFocused && focusedClaims[pos.y][x] {
				continue
			}
			canvas[pos.y][x] = r
			colors[pos.y][x] = labelColor
		}
	}
}

// starGlyph returns the glyph and color for a star based on its magnitude.
// Brighter stars (lower magnitude) get more prominent symbols.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	case mag < 4.0:
		return glyphStarDim, colorStarDim
	default:
		return glyphStarVeryDim, colorStarVeryDim
	}
}

func (m SkyViewModel) drawCardinal(canvas [][]rune, colors [][]lipgloss.Color, width, height int, label string, az float64) {
	x, _, visible := m.projectToScreen(az, 0, width, height)
	if !visible {
		return
	}
	y := height - 2 // horizon line

	if x >= 0 && x < width && y >= 0 && y < height {
		canvas[y][x] = rune(label[0])
		colors[y][x] = "252"
	}
}

// projectToScreen converts az/alt to screen coordinates relative to camera
func (m SkyViewModel) projectToScreen(az, alt float64, width, height int) (int, int, bool) {
	// Angular offset from camera center
	dAz := normalizeAngle(az - m.camAz)
	dAlt := alt - m.camEl

	// Check if within FOV
	if dAz < -fovAz/2 || dAz > fovAz/2 {
		return 0, 0, false
	}
	if dAlt < -fovEl/2 || dAlt > fovEl/2 {
		return 0, 0, false
	}

	// Map to screen coordinates
	// X: -fovAz/2..+fovAz/2 -> 0..width
	// Y: +fovEl/2..-fovEl/2 -> 0..height (inverted, higher alt = higher on screen)
	horizonY := height - 2

	x := int((dAz + fovAz/2) / fovAz * float64(width))
	y := int((fovEl/2 - dAlt) / fovEl * float64(horizonY))

	return x, y, true
}

// normalizeAngle wraps angle to -180..+180 range
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

// lerpAngle interpolates between angles, taking shortest path
func lerpAngle(a, b, t float64) float64 {
	diff := normalizeAngle(b - a)
	return a + diff*t
}

// lerp linear interpolation
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Init returns nil cmd
func (m SkyViewModel) Init() tea.Cmd {
	return nil
}
