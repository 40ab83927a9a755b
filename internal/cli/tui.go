package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/elena-krismer/nightingale/pkg/integrations/uniprot"
	"github.com/elena-krismer/nightingale/pkg/track"
	"github.com/elena-krismer/nightingale/pkg/viewport"
)

// =============================================================================
// Browser Model
// =============================================================================

const (
	// trackGutter is the width of the track-name column on the left.
	trackGutter = 12

	// frameInterval is the TUI frame clock driving debounced viewport
	// rebuilds. Resizes that arrive within one interval settle in a
	// single recomputation.
	frameInterval = time.Second / 30
)

// frameMsg ticks the viewport frame clock.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// browserModel is the interactive sequence browser. One viewport engine
// owns the visible range; every track row reads its coordinates from it,
// so panning and zooming keep all rows aligned.
type browserModel struct {
	engine *viewport.Engine
	frames *viewport.ManualFrames
	tracks []track.Track
	entry  *uniprot.Entry

	width  int
	height int

	// pending is the range to restore once the first layout exists,
	// e.g. when reopening the last view.
	pending *viewport.Range

	gotoMode  bool
	gotoInput string
	status    string
	quitting  bool
}

// newBrowserModel creates a browser for the given entry. The engine stays
// not-ready until the first WindowSizeMsg supplies real dimensions. If
// initial is non-nil, that range is restored after the first layout.
func newBrowserModel(entry *uniprot.Entry, tracks []track.Track, initial *viewport.Range) browserModel {
	frames := &viewport.ManualFrames{}
	engine := viewport.New(viewport.Dimensions{}, entry.Length, viewport.WithFrames(frames))
	return browserModel{
		engine:  engine,
		frames:  frames,
		tracks:  tracks,
		entry:   entry,
		pending: initial,
	}
}

// VisibleRange returns the engine's current range, so the caller can save
// it as the last view after the program exits.
func (m browserModel) VisibleRange() viewport.Range {
	return m.engine.VisibleRange()
}

func (m browserModel) Init() tea.Cmd {
	return frameTick()
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		drawWidth := msg.Width - trackGutter
		if drawWidth < 10 {
			drawWidth = 10
		}
		m.engine.SetDimensions(viewport.Dimensions{Width: float64(drawWidth)})
		return m, nil

	case frameMsg:
		m.frames.Fire()
		if m.pending != nil && m.engine.SingleUnitWidth() != viewport.NotReady {
			_ = m.engine.SetFromVisibleRange(m.pending.Start, m.pending.End)
			m.pending = nil
		}
		return m, frameTick()
	}
	return m, nil
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.gotoMode {
		return m.handleGotoKey(msg)
	}

	drawWidth := m.engine.Dimensions().DrawWidth()
	panStep := drawWidth / 10
	center := drawWidth / 2

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		m.engine.Pan(panStep)
	case "right", "l":
		m.engine.Pan(-panStep)
	case "+", "=":
		m.engine.Zoom(1.25, center)
	case "-", "_":
		m.engine.Zoom(0.8, center)
	case "0":
		_ = m.engine.SetFromVisibleRange(1, float64(m.entry.Length))
	case "g":
		m.gotoMode = true
		m.gotoInput = ""
		m.status = ""
	}
	return m, nil
}

func (m browserModel) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.gotoMode = false
		m.gotoInput = ""
	case "enter":
		start, end, err := parseRange(m.gotoInput)
		if err != nil {
			m.status = err.Error()
		} else {
			_ = m.engine.SetFromVisibleRange(start, end)
			m.status = ""
		}
		m.gotoMode = false
		m.gotoInput = ""
	case "backspace":
		if len(m.gotoInput) > 0 {
			m.gotoInput = m.gotoInput[:len(m.gotoInput)-1]
		}
	default:
		if len(msg.String()) == 1 {
			m.gotoInput += msg.String()
		}
	}
	return m, nil
}

// parseRange parses "start:end" (or "start-end") into a position pair.
func parseRange(s string) (float64, float64, error) {
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = "-"
	}
	startStr, endStr, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, fmt.Errorf("expected start:end, got %q", s)
	}
	start, err := strconv.ParseFloat(strings.TrimSpace(startStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start %q", startStr)
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(endStr), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end %q", endStr)
	}
	return start, end, nil
}

// =============================================================================
// View
// =============================================================================

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.engine.SingleUnitWidth() == viewport.NotReady {
		return StyleDim.Render("loading...")
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.ruler())
	b.WriteString("\n")

	drawWidth := int(m.engine.Dimensions().DrawWidth())
	gutterStyle := lipgloss.NewStyle().Foreground(colorGray).Width(trackGutter)
	for _, t := range m.tracks {
		b.WriteString(gutterStyle.Render(t.Name()))
		b.WriteString(renderTrackRow(t.Draw(m.engine), drawWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m browserModel) header() string {
	v := m.engine.VisibleRange()
	left := StyleTitle.Render(m.entry.Accession)
	if m.entry.Name != "" {
		left += " " + StyleDim.Render(m.entry.Name)
	}
	right := StyleNumber.Render(fmt.Sprintf("%.0f", v.Start)) +
		StyleDim.Render(" to ") +
		StyleNumber.Render(fmt.Sprintf("%.0f", v.End)) +
		StyleDim.Render(fmt.Sprintf(" of %d", m.entry.Length))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// ruler draws position labels across the draw area.
func (m browserModel) ruler() string {
	w := int(m.engine.Dimensions().DrawWidth())
	row := make([]rune, w)
	for i := range row {
		row[i] = ' '
	}
	for col := 0; col < w; col += 20 {
		pos := m.engine.PixelToPosition(float64(col))
		label := strconv.Itoa(int(pos))
		for i, r := range label {
			if col+i < w {
				row[col+i] = r
			}
		}
	}
	return strings.Repeat(" ", trackGutter) + StyleDim.Render(string(row))
}

func (m browserModel) footer() string {
	if m.gotoMode {
		return StyleHighlight.Render("go to: ") + StyleValue.Render(m.gotoInput+"▌")
	}
	help := StyleDim.Render("←/→ pan · +/- zoom · g go to · 0 reset · q quit")
	if m.status != "" {
		return StyleWarning.Render(m.status) + "  " + help
	}
	return help
}

// =============================================================================
// Draw-list rasterization
// =============================================================================

// fillStyles maps the track fill colors onto the terminal palette.
var fillStyles = map[string]lipgloss.Style{
	"#e6a23c": lipgloss.NewStyle().Foreground(colorYellow), // missense
	"#d9534f": lipgloss.NewStyle().Foreground(colorRed),    // stop gained
	"#5cb85c": lipgloss.NewStyle().Foreground(colorGreen),  // synonymous
	"#7a6fb0": lipgloss.NewStyle().Foreground(colorBlue),   // contact arcs
}

func styleForFill(fill string) lipgloss.Style {
	if st, ok := fillStyles[fill]; ok {
		return st
	}
	return StyleHighlight
}

// renderTrackRow flattens a draw list into one terminal row. Horizontal
// pixel coordinates map straight to columns; vertical extent collapses.
func renderTrackRow(list track.DrawList, w int) string {
	runes := make([]rune, w)
	styles := make([]lipgloss.Style, w)
	for i := range runes {
		runes[i] = ' '
		styles[i] = StyleDim
	}
	put := func(col int, r rune, st lipgloss.Style) {
		if col >= 0 && col < w {
			runes[col] = r
			styles[col] = st
		}
	}

	// Background bands first, then arcs, then point marks on top.
	for _, rect := range list.Rects {
		for col := int(rect.X); col < int(rect.X+rect.W) && col < w; col++ {
			if col >= 0 && runes[col] == ' ' {
				runes[col] = '░'
			}
		}
	}
	for _, a := range list.Arcs {
		c1, c2 := int(a.X1), int(a.X2)
		st := styleForFill(a.Stroke)
		for col := c1 + 1; col < c2 && col < w; col++ {
			put(col, '─', st)
		}
		put(c1, '╰', st)
		put(c2, '╯', st)
	}
	for _, c := range list.Circles {
		put(int(c.X), '●', styleForFill(c.Fill))
	}
	for _, l := range list.Labels {
		if l.Text == "" {
			continue
		}
		put(int(l.X), []rune(l.Text)[0], StyleValue)
	}

	var b strings.Builder
	for i, r := range runes {
		b.WriteString(styles[i].Render(string(r)))
	}
	return b.String()
}
