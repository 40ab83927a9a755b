package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elena-krismer/nightingale/pkg/integrations/uniprot"
	"github.com/elena-krismer/nightingale/pkg/track"
	"github.com/elena-krismer/nightingale/pkg/viewport"
)

func testEntry(n int) *uniprot.Entry {
	return &uniprot.Entry{
		Accession: "P05067",
		Name:      "Amyloid-beta precursor protein",
		Sequence:  strings.Repeat("A", n),
		Length:    n,
	}
}

// newTestBrowser builds a browser that has already laid out once.
func newTestBrowser(t *testing.T, n int, initial *viewport.Range) browserModel {
	t.Helper()
	entry := testEntry(n)
	m := newBrowserModel(entry, []track.Track{track.NewSequenceTrack(entry.Sequence)}, initial)
	m = update(t, m, tea.WindowSizeMsg{Width: 112, Height: 24})
	m = update(t, m, frameMsg(time.Now()))
	return m
}

func update(t *testing.T, m browserModel, msg tea.Msg) browserModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(browserModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}

func TestBrowserInitialLayout(t *testing.T) {
	m := newTestBrowser(t, 770, nil)

	v := m.VisibleRange()
	if v.Start != 1 || v.End != 770 {
		t.Errorf("initial range = %+v, want {1 770}", v)
	}
	if m.engine.SingleUnitWidth() == viewport.NotReady {
		t.Error("engine not ready after resize and frame")
	}
}

func TestBrowserRestoresInitialRange(t *testing.T) {
	m := newTestBrowser(t, 770, &viewport.Range{Start: 100, End: 200})

	v := m.VisibleRange()
	if !near(v.Start, 100) {
		t.Errorf("restored start = %v, want 100", v.Start)
	}
}

func TestBrowserZoomNarrowsRange(t *testing.T) {
	m := newTestBrowser(t, 770, nil)

	m = update(t, m, keyRunes("+"))
	v := m.VisibleRange()
	if v.Span() >= 769 {
		t.Errorf("span after zoom = %v, want narrower than full", v.Span())
	}
}

func TestBrowserPanShiftsView(t *testing.T) {
	m := newTestBrowser(t, 770, &viewport.Range{Start: 300, End: 400})

	before := m.VisibleRange()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	after := m.VisibleRange()
	if after.Start <= before.Start {
		t.Errorf("start after right pan = %v, want > %v", after.Start, before.Start)
	}
}

func TestBrowserResetShowsFullSequence(t *testing.T) {
	m := newTestBrowser(t, 770, &viewport.Range{Start: 100, End: 110})

	m = update(t, m, keyRunes("0"))
	v := m.VisibleRange()
	if !near(v.Start, 1) || !near(v.End, 770) {
		t.Errorf("range after reset = %+v, want {1 770}", v)
	}
}

func TestBrowserGoto(t *testing.T) {
	m := newTestBrowser(t, 770, nil)

	m = update(t, m, keyRunes("g"))
	if !m.gotoMode {
		t.Fatal("g should enter goto mode")
	}
	for _, r := range "250:260" {
		m = update(t, m, keyRunes(string(r)))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.gotoMode {
		t.Error("enter should leave goto mode")
	}
	v := m.VisibleRange()
	if !near(v.Start, 250) || !near(v.End, 260) {
		t.Errorf("range after goto = %+v, want {250 260}", v)
	}
}

func TestBrowserGotoInvalidInput(t *testing.T) {
	m := newTestBrowser(t, 770, nil)

	m = update(t, m, keyRunes("g"))
	m = update(t, m, keyRunes("x"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.status == "" {
		t.Error("invalid goto input should set a status message")
	}
	if v := m.VisibleRange(); v.Start != 1 || v.End != 770 {
		t.Errorf("range changed on invalid input: %+v", v)
	}
}

func TestBrowserQuit(t *testing.T) {
	m := newTestBrowser(t, 770, nil)

	next, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("q should return tea.Quit")
	}
	if !next.(browserModel).quitting {
		t.Error("q should set quitting")
	}
}

func TestBrowserViewShowsHeader(t *testing.T) {
	m := newTestBrowser(t, 770, nil)

	out := m.View()
	if !strings.Contains(out, "P05067") {
		t.Error("view should contain the accession")
	}
	if !strings.Contains(out, "sequence") {
		t.Error("view should contain the track name")
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in         string
		start, end float64
		wantErr    bool
	}{
		{"100:200", 100, 200, false},
		{"100-200", 100, 200, false},
		{" 1 : 770 ", 1, 770, false},
		{"abc", 0, 0, true},
		{"100", 0, 0, true},
		{"100:xyz", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			start, end, err := parseRange(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRange(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && (start != tt.start || end != tt.end) {
				t.Errorf("parseRange(%q) = %v, %v", tt.in, start, end)
			}
		})
	}
}

func TestRenderTrackRowMarks(t *testing.T) {
	list := track.DrawList{
		Circles: []track.Circle{{X: 5, Fill: "#e6a23c"}},
		Labels:  []track.Label{{X: 2, Text: "M"}},
	}
	row := renderTrackRow(list, 10)
	if !strings.Contains(row, "●") {
		t.Error("row should contain the circle mark")
	}
	if !strings.Contains(row, "M") {
		t.Error("row should contain the label text")
	}
}

func TestRenderTrackRowArc(t *testing.T) {
	list := track.DrawList{
		Arcs: []track.Arc{{X1: 1, X2: 6, Stroke: "#7a6fb0"}},
	}
	row := renderTrackRow(list, 10)
	for _, mark := range []string{"╰", "─", "╯"} {
		if !strings.Contains(row, mark) {
			t.Errorf("row missing arc mark %q", mark)
		}
	}
}
