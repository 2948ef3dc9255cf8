// Package effects turns a frame position into the visual state of every
// element on screen. It owns the choreography (delays, spring configs, ranges)
// and nothing else: drawing lives in compose, timing in timeline.
package effects

import (
	"fmt"
	"strings"

	"github.com/ivlev/salesreel/internal/dataset"
	"github.com/ivlev/salesreel/internal/timeline"
)

// ChartVariant selects how the summary chart is laid out.
type ChartVariant string

const (
	ChartTimeline ChartVariant = "timeline"
	ChartCompact  ChartVariant = "compact"
	ChartPlatform ChartVariant = "platform"
)

// ChartVariants lists the supported variants in the order they are documented.
var ChartVariants = []ChartVariant{ChartTimeline, ChartCompact, ChartPlatform}

// ParseChart accepts a variant name, case-insensitively. Empty means timeline.
func ParseChart(s string) (ChartVariant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ChartTimeline, nil
	}
	for _, v := range ChartVariants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown chart variant %q", s)
}

// Scene is the immutable view of a record list that the animator reads from.
// Records keep the order they were loaded in; chart bars are derived once per
// variant so no frame ever re-sorts the shared list.
type Scene struct {
	Records    []dataset.SalesRecord
	MaxSales   float64
	TotalSales float64
	bars       map[ChartVariant][]Bar
}

// NewScene copies records and precomputes the chart bars.
func NewScene(records []dataset.SalesRecord) *Scene {
	records = dataset.Clone(records)
	s := &Scene{
		Records:    records,
		MaxSales:   dataset.MaxSales(records),
		TotalSales: dataset.TotalSales(records),
		bars:       make(map[ChartVariant][]Bar, len(ChartVariants)),
	}
	for _, v := range ChartVariants {
		s.bars[v] = buildBars(v, records)
	}
	return s
}

// Len is the number of slides.
func (s *Scene) Len() int {
	return len(s.Records)
}

// Bars returns the bars of a chart variant in display order.
func (s *Scene) Bars(v ChartVariant) []Bar {
	return s.bars[v]
}

// FrameState is the full visual state of one frame. Exactly one of Intro,
// Slide and Summary is set, matching Position.Phase.
type FrameState struct {
	Frame    int
	Position timeline.Position
	Intro    *IntroState
	Slide    *SlideState
	Summary  *SummaryState
}

// Animator computes frame states. Width and Height are the logical canvas
// size the positions and lengths are expressed in.
type Animator struct {
	FPS    int
	Width  float64
	Height float64
	Timing timeline.Timing
	Chart  ChartVariant
}

// NewAnimator returns an animator for the given canvas and timing.
func NewAnimator(fps int, width, height float64, timing timeline.Timing, chart ChartVariant) *Animator {
	if chart == "" {
		chart = ChartTimeline
	}
	return &Animator{FPS: fps, Width: width, Height: height, Timing: timing, Chart: chart}
}

// Duration is the total frame count for the scene.
func (a *Animator) Duration(scene *Scene) int {
	return a.Timing.Duration(scene.Len())
}

// AnimateFrame resolves an absolute frame and animates it. Frames outside
// [0, Duration) are rejected rather than clamped.
func (a *Animator) AnimateFrame(scene *Scene, frame int) (FrameState, error) {
	if frame < 0 || frame >= a.Duration(scene) {
		return FrameState{}, fmt.Errorf("frame %d out of range [0, %d)", frame, a.Duration(scene))
	}
	state := a.Animate(scene, a.Timing.Resolve(frame, scene.Len()))
	state.Frame = frame
	return state, nil
}

// Animate computes the state for an already resolved position.
func (a *Animator) Animate(scene *Scene, pos timeline.Position) FrameState {
	state := FrameState{Position: pos}
	switch pos.Phase {
	case timeline.Intro:
		state.Intro = a.intro(scene, pos.Offset)
	case timeline.ItemSlide:
		state.Slide = a.slide(scene, pos.Index, pos.Offset)
	case timeline.Summary:
		state.Summary = a.summary(scene, pos.Offset)
	}
	return state
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
