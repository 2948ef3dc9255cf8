package timeline

import "testing"

func TestDuration(t *testing.T) {
	for name, timing := range Presets {
		for n := 0; n <= 40; n++ {
			want := timing.Intro + n*timing.Slide + timing.Summary
			if got := timing.Duration(n); got != want {
				t.Errorf("%s: Duration(%d) = %d, want %d", name, n, got, want)
			}
		}
	}
}

func TestDurationScenarios(t *testing.T) {
	timing := Timing{Intro: 80, Slide: 100, Summary: 150}

	if got := timing.Duration(19); got != 2130 {
		t.Errorf("Duration(19) = %d, want 2130", got)
	}
	if got := timing.Duration(0); got != 230 {
		t.Errorf("Duration(0) = %d, want 230", got)
	}

	pos := timing.Resolve(2015, 19)
	if pos.Phase != Summary || pos.Offset != 35 {
		t.Errorf("Resolve(2015, 19) = %v, want summary+35", pos)
	}
}

func TestEmptyListHasNoSlides(t *testing.T) {
	timing := Default()
	for frame := 0; frame < timing.Duration(0); frame++ {
		if pos := timing.Resolve(frame, 0); pos.Phase == ItemSlide {
			t.Fatalf("frame %d resolved to a slide with no records", frame)
		}
	}
}

func TestResolveBoundaries(t *testing.T) {
	timing := Timing{Intro: 80, Slide: 100, Summary: 150}
	n := 3

	tests := []struct {
		frame int
		want  Position
	}{
		{0, Position{Phase: Intro, Offset: 0}},
		{79, Position{Phase: Intro, Offset: 79}},
		{80, Position{Phase: ItemSlide, Index: 0, Offset: 0}},
		{179, Position{Phase: ItemSlide, Index: 0, Offset: 99}},
		{180, Position{Phase: ItemSlide, Index: 1, Offset: 0}},
		{379, Position{Phase: ItemSlide, Index: 2, Offset: 99}},
		{380, Position{Phase: Summary, Offset: 0}},
		{529, Position{Phase: Summary, Offset: 149}},
		// за пределами длительности: не зажимается
		{600, Position{Phase: Summary, Offset: 220}},
	}

	for _, tt := range tests {
		if got := timing.Resolve(tt.frame, n); got != tt.want {
			t.Errorf("Resolve(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestWindowsPartitionDuration(t *testing.T) {
	for name, timing := range Presets {
		for _, n := range []int{0, 1, 2, 19} {
			windows := timing.Windows(n)
			next := 0
			for _, w := range windows {
				if w.Start != next {
					t.Fatalf("%s n=%d: window %+v starts at %d, want %d", name, n, w, w.Start, next)
				}
				if w.Length <= 0 {
					t.Fatalf("%s n=%d: empty window %+v", name, n, w)
				}
				next = w.End()
			}
			if next != timing.Duration(n) {
				t.Errorf("%s n=%d: windows cover %d frames, want %d", name, n, next, timing.Duration(n))
			}

			// Every frame of a window resolves to exactly that window.
			for _, w := range windows {
				for frame := w.Start; frame < w.End(); frame++ {
					pos := timing.Resolve(frame, n)
					if pos.Phase != w.Phase || pos.Index != w.Index || pos.Offset != frame-w.Start {
						t.Fatalf("%s n=%d: frame %d resolved to %v, window %+v", name, n, frame, pos, w)
					}
				}
			}
		}
	}
}

func TestClamp(t *testing.T) {
	timing := Default()
	if got := timing.Clamp(-5, 2); got != 0 {
		t.Errorf("Clamp(-5) = %d", got)
	}
	if got := timing.Clamp(10_000, 2); got != timing.Duration(2)-1 {
		t.Errorf("Clamp(10000) = %d, want %d", got, timing.Duration(2)-1)
	}
	if got := timing.Clamp(42, 2); got != 42 {
		t.Errorf("Clamp(42) = %d", got)
	}
}

func TestStagger(t *testing.T) {
	prev := -1
	for i := 0; i < 20; i++ {
		got := Stagger(7, i, 3)
		if got != 7+i*3 {
			t.Errorf("Stagger(7, %d, 3) = %d", i, got)
		}
		if got <= prev {
			t.Errorf("Stagger not strictly increasing at %d", i)
		}
		prev = got
	}
}

func TestTimingValidate(t *testing.T) {
	tests := []struct {
		timing  Timing
		wantErr bool
	}{
		{Timing{80, 100, 150}, false},
		{Timing{80, 100, 0}, false},
		{Timing{80, 0, 150}, true},
		{Timing{-1, 100, 150}, true},
		{Timing{0, 100, 0}, true},
	}
	for _, tt := range tests {
		err := tt.timing.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.timing, err, tt.wantErr)
		}
	}
}

func TestPreset(t *testing.T) {
	if _, err := Preset("cinematic"); err != nil {
		t.Fatal(err)
	}
	if _, err := Preset("nope"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}
