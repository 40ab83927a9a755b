package viewport

import (
	"math"
	"testing"
)

func newPair() (*Manager, *Engine, *Engine) {
	m := NewManager()
	a := New(Dimensions{Width: 500}, 1000)
	b := New(Dimensions{Width: 300}, 1000)
	m.Register(a)
	m.Register(b)
	return m, a, b
}

func TestManagerRebroadcastsGesture(t *testing.T) {
	_, a, b := newPair()

	a.Zoom(4, 0) // show the first quarter

	va, vb := a.VisibleRange(), b.VisibleRange()
	if !closeTo(va.Start, vb.Start) || !closeTo(va.End, vb.End) {
		t.Errorf("engines out of sync: a=%+v b=%+v", va, vb)
	}
}

func TestManagerDoesNotEcho(t *testing.T) {
	_, a, b := newPair()

	var aNotes, bNotes int
	a.OnRangeChange(func(RangeChange) { aNotes++ })
	b.OnRangeChange(func(RangeChange) { bNotes++ })

	a.Pan(-100)

	// The writer emits once; the reader is brought in line silently.
	if aNotes != 1 {
		t.Errorf("writer emitted %d notifications, want 1", aNotes)
	}
	if bNotes != 0 {
		t.Errorf("reader emitted %d notifications, want 0 (latched)", bNotes)
	}
}

func TestManagerSetRange(t *testing.T) {
	m, a, b := newPair()

	if err := m.SetRange(100, 200); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	for _, e := range []*Engine{a, b} {
		v := e.VisibleRange()
		if !closeTo(v.Start, 100) || !closeTo(v.End, 200) {
			t.Errorf("engine range = %+v, want {100 200}", v)
		}
	}
	if rc := m.Range(); !closeTo(rc.DisplayStart, 100) || !closeTo(rc.DisplayEnd, 200) {
		t.Errorf("manager range = %+v, want {100 200}", rc)
	}
}

func TestManagerSetRangeRejectsMalformed(t *testing.T) {
	m, _, _ := newPair()

	if err := m.SetRange(math.NaN(), 10); err == nil {
		t.Error("SetRange with NaN should propagate the engine error")
	}
}

func TestManagerLateRegistrationSyncs(t *testing.T) {
	m, a, _ := newPair()

	a.Zoom(10, 0)
	want := a.VisibleRange()

	c := New(Dimensions{Width: 700}, 1000)
	m.Register(c)

	v := c.VisibleRange()
	if !closeTo(v.Start, want.Start) || !closeTo(v.End, want.End) {
		t.Errorf("late engine range = %+v, want %+v", v, want)
	}
}

func TestManagerUnregister(t *testing.T) {
	m, a, b := newPair()

	unregister := m.Register(New(Dimensions{Width: 100}, 1000))
	unregister()

	a.Zoom(2, 0)
	// Unregistered engines stop receiving; remaining pair stays in sync.
	va, vb := a.VisibleRange(), b.VisibleRange()
	if !closeTo(va.Start, vb.Start) || !closeTo(va.End, vb.End) {
		t.Errorf("remaining engines out of sync: a=%+v b=%+v", va, vb)
	}
}

func TestManagerListener(t *testing.T) {
	m, a, _ := newPair()

	var got []RangeChange
	m.OnRangeChange(func(rc RangeChange) { got = append(got, rc) })

	a.Zoom(2, 0)
	if len(got) != 1 {
		t.Fatalf("manager listener fired %d times, want 1", len(got))
	}
	v := a.VisibleRange()
	if !closeTo(got[0].DisplayStart, v.Start) || !closeTo(got[0].DisplayEnd, v.End) {
		t.Errorf("listener payload %+v does not match engine range %+v", got[0], v)
	}
}
