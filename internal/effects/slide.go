package effects

import (
	"fmt"

	"github.com/ivlev/salesreel/internal/dataset"
	"github.com/ivlev/salesreel/internal/renderer"
)

// Slide choreography: each group springs in after its own delay.
const (
	detailsDelay = 5
	titleDelay   = 10
	salesDelay   = 15
	counterDelay = 25

	// SlideHeadroom scales the largest record so no slide bar is ever full.
	SlideHeadroom = 1.2
)

var (
	textSpring    = renderer.SpringConfig{Stiffness: 100, Damping: 14}
	counterSpring = renderer.SpringConfig{Stiffness: 80, Damping: 20}
	visualsSpring = renderer.SpringConfig{Stiffness: 80, Damping: 14}
)

// SlideState describes one record slide: info column on the left, box art and
// console picture on the right.
type SlideState struct {
	Record dataset.SalesRecord
	Index  int

	DetailsOpacity float64
	DetailsX       float64
	TitleOpacity   float64
	TitleX         float64
	SalesOpacity   float64
	SalesY         float64

	SalesValue float64
	SalesText  string  // two decimals
	BarFill    float64 // percent of the bar track, 0..100

	VisualsX       float64
	VisualsOpacity float64
	VisualsScale   float64
	VisualsRotate  float64 // degrees

	ConsoleOpacity float64
	ConsoleY       float64
}

func (a *Animator) slide(scene *Scene, index, offset int) *SlideState {
	rec := scene.Records[index]

	details := renderer.Spring(offset-detailsDelay, a.FPS, textSpring)
	title := renderer.Spring(offset-titleDelay, a.FPS, textSpring)
	sales := renderer.Spring(offset-salesDelay, a.FPS, textSpring)
	counter := renderer.Spring(offset-counterDelay, a.FPS, counterSpring)
	visuals := renderer.Spring(offset, a.FPS, visualsSpring)

	st := &SlideState{
		Record: rec,
		Index:  index,

		DetailsOpacity: clamp01(details),
		DetailsX:       renderer.Lerp(-50, 0, details),
		TitleOpacity:   clamp01(title),
		TitleX:         renderer.Lerp(-50, 0, title),
		SalesOpacity:   clamp01(sales),
		SalesY:         renderer.Lerp(20, 0, sales),

		SalesValue: renderer.Lerp(0, rec.NASales, counter),

		VisualsX:       renderer.Lerp(50, 0, visuals),
		VisualsOpacity: clamp01(visuals),
		VisualsScale:   renderer.Lerp(0.8, 1, visuals),
		VisualsRotate:  renderer.Lerp(-5, 0, visuals),

		ConsoleOpacity: renderer.FrameWindow(offset, 10, 30, renderer.Range{Min: 0, Max: 0.5}),
		ConsoleY:       renderer.FrameWindow(offset, 10, 40, renderer.Range{Min: 50, Max: 0}),
	}
	st.SalesText = fmt.Sprintf("%.2f", st.SalesValue)

	if limit := scene.MaxSales * SlideHeadroom; limit > 0 {
		fill := renderer.Lerp(0, rec.NASales/limit*100, counter)
		st.BarFill = 100 * clamp01(fill/100)
	}
	return st
}
