package viewport

import "testing"

func TestRequestApplyCoalesces(t *testing.T) {
	frames := &ManualFrames{}
	applies := 0
	s := NewApplyScheduler(frames, func() { applies++ })

	// N requests within one frame settle exactly once.
	for i := 0; i < 5; i++ {
		s.RequestApply()
	}
	if applies != 0 {
		t.Fatalf("apply ran before the frame fired: %d", applies)
	}
	if !s.Pending() {
		t.Fatal("scheduler should be pending")
	}

	frames.Fire()
	if applies != 1 {
		t.Errorf("applies = %d, want exactly 1", applies)
	}
	if s.Pending() {
		t.Error("pending flag should clear after flush")
	}
}

func TestRequestApplyAcrossFrames(t *testing.T) {
	frames := &ManualFrames{}
	applies := 0
	s := NewApplyScheduler(frames, func() { applies++ })

	s.RequestApply()
	frames.Fire()
	s.RequestApply()
	s.RequestApply()
	frames.Fire()

	if applies != 2 {
		t.Errorf("applies = %d, want 2 (one per frame)", applies)
	}
}

func TestRequestApplyDuringFlushSchedulesNextFrame(t *testing.T) {
	frames := &ManualFrames{}
	applies := 0
	var s *ApplyScheduler
	s = NewApplyScheduler(frames, func() {
		applies++
		if applies == 1 {
			// A request raised by the apply itself lands on the next
			// frame, it is not absorbed into this one.
			s.RequestApply()
		}
	})

	s.RequestApply()
	frames.Fire()
	if applies != 1 {
		t.Fatalf("applies after first frame = %d, want 1", applies)
	}
	if !frames.Pending() {
		t.Fatal("re-request during flush should schedule the next frame")
	}
	frames.Fire()
	if applies != 2 {
		t.Errorf("applies after second frame = %d, want 2", applies)
	}
}

func TestImmediateFrames(t *testing.T) {
	ran := false
	ImmediateFrames{}.Schedule(func() { ran = true })
	if !ran {
		t.Error("ImmediateFrames should run synchronously")
	}
}

func TestEngineDebouncesStructuralChanges(t *testing.T) {
	frames := &ManualFrames{}
	e := New(Dimensions{Width: 500}, 1000, WithFrames(frames))

	var notified int
	e.OnRangeChange(func(RangeChange) { notified++ })

	// Length and width changing together in one tick settle once.
	e.SetSequenceLength(2000)
	e.SetDimensions(Dimensions{Width: 800})
	frames.Fire()

	if notified != 1 {
		t.Errorf("notified %d times for a coalesced rebuild, want 1", notified)
	}
	if got := e.SequenceLength(); got != 2000 {
		t.Errorf("SequenceLength = %d, want 2000", got)
	}
	if v := e.VisibleRange(); v.End > 2000 || v.Start < 1 {
		t.Errorf("visible range %+v outside bounds after rebuild", v)
	}
}
