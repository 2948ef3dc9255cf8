package director

import (
	"fmt"
	"math"

	"github.com/ivlev/salesreel/internal/dataset"
	"github.com/ivlev/salesreel/internal/timeline"
)

// Director lays out the scene list and the camera moves for a record list
type Director struct {
	ViewportWidth  int
	ViewportHeight int
	MinZoom        float64
	MaxZoom        float64 // Push-in limit for slide scenes
}

// NewDirector creates a new Director with default settings
func NewDirector(viewportWidth, viewportHeight int) *Director {
	return &Director{
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
		MinZoom:        1.0,
		MaxZoom:        1.06,
	}
}

// Build creates the storyboard for records under the given timing.
// Scene frames come straight from timing.Windows, so the storyboard and the
// renderer can never disagree on the duration.
func (d *Director) Build(records []dataset.SalesRecord, timing timeline.Timing, fps int) (*Storyboard, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}
	if err := timing.Validate(); err != nil {
		return nil, err
	}

	n := len(records)
	sb := &Storyboard{
		Version:        StoryboardVersion,
		FPS:            fps,
		Width:          d.ViewportWidth,
		Height:         d.ViewportHeight,
		Timing:         timing,
		DurationFrames: timing.Duration(n),
	}

	for i, w := range timing.Windows(n) {
		seconds := float64(w.Length) / float64(fps)
		scene := Scene{
			ID:       i + 1,
			Phase:    w.Phase.String(),
			Index:    w.Index,
			From:     w.Start,
			Frames:   w.Length,
			Duration: seconds,
		}
		switch w.Phase {
		case timeline.ItemSlide:
			scene.Title = records[w.Index].Title
			scene.Keyframes = d.slideKeyframes(seconds)
		case timeline.Intro:
			scene.Title = "intro"
			scene.Keyframes = d.staticKeyframes(seconds)
		case timeline.Summary:
			scene.Title = "summary"
			scene.Keyframes = d.staticKeyframes(seconds)
		}
		sb.Scenes = append(sb.Scenes, scene)
	}
	return sb, nil
}

// Validate checks that a storyboard read from disk still matches the records
// and timing it will be rendered with.
func (sb *Storyboard) Validate(n int, timing timeline.Timing, fps int) error {
	if sb.FPS != fps {
		return fmt.Errorf("storyboard fps %d does not match %d", sb.FPS, fps)
	}
	if sb.Timing != timing {
		return fmt.Errorf("storyboard timing %+v does not match %+v", sb.Timing, timing)
	}
	if want := timing.Duration(n); sb.DurationFrames != want {
		return fmt.Errorf("storyboard covers %d frames, expected %d for %d records", sb.DurationFrames, want, n)
	}
	if len(sb.Scenes) != len(timing.Windows(n)) {
		return fmt.Errorf("storyboard has %d scenes, expected %d", len(sb.Scenes), len(timing.Windows(n)))
	}
	return nil
}

func (d *Director) fullView() Rectangle {
	return Rectangle{X: 0, Y: 0, W: d.ViewportWidth, H: d.ViewportHeight}
}

func (d *Director) staticKeyframes(seconds float64) []Keyframe {
	return []Keyframe{
		{Time: 0, Focus: "full_view", Rect: d.fullView(), Zoom: 1.0},
		{Time: seconds, Focus: "full_view", Rect: d.fullView(), Zoom: 1.0},
	}
}

// slideKeyframes starts on the full frame and slowly pushes in on the box art
func (d *Director) slideKeyframes(seconds float64) []Keyframe {
	art := ArtPanelRect(d.ViewportWidth, d.ViewportHeight)
	return []Keyframe{
		{Time: 0, Focus: "full_view", Rect: d.fullView(), Zoom: 1.0},
		{Time: seconds, Focus: "box_art", Rect: art, Zoom: d.calculateZoom(art)},
	}
}

// calculateZoom determines zoom level to fit block in viewport
func (d *Director) calculateZoom(block Rectangle) float64 {
	padding := 0.9 // Use 90% of viewport

	viewportW := float64(d.ViewportWidth) * padding
	viewportH := float64(d.ViewportHeight) * padding

	if block.W == 0 || block.H == 0 {
		return d.MinZoom
	}

	// Use the smaller scale to ensure block fits
	zoom := math.Min(viewportW/float64(block.W), viewportH/float64(block.H))

	if zoom < d.MinZoom {
		zoom = d.MinZoom
	}
	if zoom > d.MaxZoom {
		zoom = d.MaxZoom
	}
	return zoom
}

// ArtPanelRect is where a slide places its box art: right half, nudged right
// and up, 400 logical pixels wide at 1920x1080 with a 3:4 aspect.
func ArtPanelRect(width, height int) Rectangle {
	s := float64(width) / 1920
	w := 400 * s
	h := w * 4 / 3
	cx := float64(width)*0.75 + 64*s
	cy := float64(height)/2 - 144*s
	return Rectangle{
		X: int(math.Round(cx - w/2)),
		Y: int(math.Round(cy - h/2)),
		W: int(math.Round(w)),
		H: int(math.Round(h)),
	}
}
