package renderer

import (
	"math"
	"testing"

	"github.com/ivlev/salesreel/internal/director"
)

func TestInterpolateKeyframes(t *testing.T) {
	keyframes := []director.Keyframe{
		{Time: 0.0, Rect: director.Rectangle{X: 0, Y: 0, W: 1920, H: 1080}, Zoom: 1.0},
		{Time: 2.0, Rect: director.Rectangle{X: 100, Y: 100, W: 800, H: 600}, Zoom: 1.5},
		{Time: 4.0, Rect: director.Rectangle{X: 200, Y: 200, W: 400, H: 300}, Zoom: 2.0},
	}

	tests := []struct {
		time         float64
		expectedZoom float64
	}{
		{-1.0, 1.0}, // Before first keyframe
		{0.0, 1.0},  // First keyframe
		{1.0, 1.25}, // Midpoint between first and second (approximately)
		{2.0, 1.5},  // Second keyframe
		{3.0, 1.75}, // Midpoint between second and third (approximately)
		{4.0, 2.0},  // Third keyframe
		{5.0, 2.0},  // After last keyframe
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			state := InterpolateKeyframes(keyframes, tt.time)

			// Allow some tolerance due to easing
			tolerance := 0.3
			if math.Abs(state.Zoom-tt.expectedZoom) > tolerance {
				t.Errorf("At time %.1f: expected zoom ~%.2f, got %.2f", tt.time, tt.expectedZoom, state.Zoom)
			}
		})
	}
}

func TestInterpolateKeyframesEmpty(t *testing.T) {
	state := InterpolateKeyframes(nil, 1)
	if state.Zoom != 1.0 {
		t.Errorf("expected identity camera, got %+v", state)
	}
}

func TestSpringZeroAtOrBeforeStart(t *testing.T) {
	configs := []SpringConfig{
		{},
		{Stiffness: 60, Damping: 10},
		{Stiffness: 150, Damping: 15, Mass: 0.8},
		{Damping: 20},
		{Stiffness: 80, Damping: 20},
	}
	for _, cfg := range configs {
		for _, elapsed := range []int{-100, -1, 0} {
			if got := Spring(elapsed, 30, cfg); got != 0 {
				t.Errorf("Spring(%d, %+v) = %f, want 0", elapsed, cfg, got)
			}
		}
	}
}

func TestSpringConverges(t *testing.T) {
	configs := []SpringConfig{
		{},
		{Stiffness: 60, Damping: 10},
		{Stiffness: 150, Damping: 15, Mass: 0.8},
		{Damping: 20},
		{Stiffness: 120, Damping: 15},
		{Stiffness: 100, Damping: 20},       // critically damped
		{Stiffness: 10, Damping: 40},        // over-damped
		{Stiffness: 1, Damping: 2, Mass: 1}, // critically damped, slow
	}
	for _, cfg := range configs {
		got := Spring(30*60, 30, cfg)
		if math.Abs(got-1) > 1e-3 {
			t.Errorf("Spring(+60s, %+v) = %f, want ~1", cfg, got)
		}
	}
}

func TestSpringMonotonicWhenNotUnderDamped(t *testing.T) {
	configs := []SpringConfig{
		{Stiffness: 100, Damping: 20},
		{Stiffness: 10, Damping: 40},
		{Stiffness: 80, Damping: 20},
	}
	for _, cfg := range configs {
		if cfg.DampingRatio() < 1 {
			t.Fatalf("config %+v is under-damped", cfg)
		}
		prev := 0.0
		for f := 0; f <= 300; f++ {
			v := Spring(f, 30, cfg)
			if v < prev-1e-12 {
				t.Fatalf("%+v: progress decreased at frame %d: %f < %f", cfg, f, v, prev)
			}
			if v > 1+1e-12 {
				t.Fatalf("%+v: progress overshot at frame %d: %f", cfg, f, v)
			}
			prev = v
		}
	}
}

func TestSpringUnderDampedOvershootsThenSettles(t *testing.T) {
	cfg := SpringConfig{Stiffness: 60, Damping: 10}
	peak := 0.0
	for f := 0; f < 120; f++ {
		if v := Spring(f, 30, cfg); v > peak {
			peak = v
		}
	}
	if peak <= 1 {
		t.Errorf("expected bounce above 1, peak %f", peak)
	}
	if peak > 1.5 {
		t.Errorf("bounce too large: %f", peak)
	}
}

func TestSpringFromTo(t *testing.T) {
	if got := SpringFromTo(0, 30, SpringConfig{Damping: 12}, 50, 0); got != 50 {
		t.Errorf("start value = %f, want 50", got)
	}
	if got := SpringFromTo(600, 30, SpringConfig{Damping: 12}, 50, 0); math.Abs(got) > 1e-3 {
		t.Errorf("settled value = %f, want ~0", got)
	}
}

func TestInterpolateClampStaysInOutputRange(t *testing.T) {
	ranges := []struct{ in, out Range }{
		{Range{0, 1}, Range{0, 100}},
		{Range{110, 130}, Range{1, 0}},
		{Range{0, 0.5}, Range{0, 1}},
		{Range{10, 40}, Range{50, 0}},
		{Range{5, 5}, Range{-3, 3}},
	}
	for _, r := range ranges {
		lo, hi := math.Min(r.out.Min, r.out.Max), math.Max(r.out.Min, r.out.Max)
		for x := -1000.0; x <= 1000; x += 0.5 {
			got := Interpolate(x, r.in, r.out, Clamp)
			if got < lo || got > hi {
				t.Fatalf("Interpolate(%f, %+v, %+v) = %f escapes [%f, %f]", x, r.in, r.out, got, lo, hi)
			}
		}
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		x    float64
		in   Range
		out  Range
		mode Extrapolate
		want float64
	}{
		{0.5, Range{0, 1}, Range{0, 10}, Clamp, 5},
		{2, Range{0, 1}, Range{0, 10}, Clamp, 10},
		{2, Range{0, 1}, Range{0, 10}, Extend, 20},
		{-1, Range{0, 1}, Range{-1080, 0}, Extend, -2160},
		{120, Range{110, 130}, Range{1, 0}, Clamp, 0.5},
		{0, Range{110, 130}, Range{1, 0}, Clamp, 1},
	}
	for _, tt := range tests {
		got := Interpolate(tt.x, tt.in, tt.out, tt.mode)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Interpolate(%v, %+v, %+v, %v) = %v, want %v", tt.x, tt.in, tt.out, tt.mode, got, tt.want)
		}
	}
}

func TestFrameWindow(t *testing.T) {
	if got := FrameWindow(5, 10, 30, Range{0, 0.5}); got != 0 {
		t.Errorf("before window = %f", got)
	}
	if got := FrameWindow(20, 10, 30, Range{0, 0.5}); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("mid window = %f", got)
	}
	if got := FrameWindow(99, 10, 30, Range{0, 0.5}); got != 0.5 {
		t.Errorf("after window = %f", got)
	}
}
