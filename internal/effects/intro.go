package effects

import (
	"fmt"

	"github.com/ivlev/salesreel/internal/renderer"
)

// Intro choreography, in frames from the start of the intro.
const (
	PlungeFrame     = 45
	ImpactFrame     = PlungeFrame + 5
	TitleFrame      = ImpactFrame + 10
	titleFadeFrames = 20
	exitFrames      = 15
	exitBlur        = 20
)

var (
	entrySpring     = renderer.SpringConfig{Stiffness: 60, Damping: 10}
	plungeSpring    = renderer.SpringConfig{Stiffness: 150, Damping: 15, Mass: 0.8}
	shockwaveSpring = renderer.SpringConfig{Damping: 20}
	titleSpring     = renderer.SpringConfig{Damping: 12}
)

// IntroState describes the sword drop, the impact ring and the title card.
type IntroState struct {
	SwordRotate float64 // degrees
	SwordY      float64 // offset from the resting point, 0 once inserted

	ShockwaveScale   float64
	ShockwaveOpacity float64

	TitleY       float64
	TitleOpacity float64

	// Opacity and Blur apply to the whole intro layer on its way out.
	Opacity float64
	Blur    float64

	TotalSales string
}

func (a *Animator) intro(scene *Scene, offset int) *IntroState {
	entry := renderer.Spring(offset, a.FPS, entrySpring)
	plunge := renderer.Spring(offset-PlungeFrame, a.FPS, plungeSpring)

	fade := renderer.Range{Min: 0, Max: 1}
	st := &IntroState{
		SwordRotate:  renderer.Lerp(-1080, 0, entry),
		SwordY:       renderer.Lerp(-1200, -80, entry) + renderer.Lerp(0, 80, plunge),
		TitleY:       renderer.SpringFromTo(offset-TitleFrame, a.FPS, titleSpring, 50, 0),
		TitleOpacity: renderer.FrameWindow(offset, TitleFrame, TitleFrame+titleFadeFrames, fade),
		TotalSales:   fmt.Sprintf("%.1f", scene.TotalSales),
	}

	// The ring only exists from the moment of impact.
	if offset >= ImpactFrame {
		shock := renderer.Spring(offset-ImpactFrame, a.FPS, shockwaveSpring)
		st.ShockwaveScale = renderer.Lerp(0.5, 3, shock)
		st.ShockwaveOpacity = clamp01(renderer.Lerp(0.6, 0, shock))
	}

	end := a.Timing.Intro
	st.Opacity = renderer.FrameWindow(offset, end-exitFrames, end, renderer.Range{Min: 1, Max: 0})
	st.Blur = renderer.FrameWindow(offset, end-exitFrames, end, renderer.Range{Min: 0, Max: exitBlur})
	return st
}
