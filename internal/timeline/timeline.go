// Package timeline maps a frame number to the phase of the video it belongs to.
//
// A video is an intro, one slide per record and a summary, laid out back to back.
// Every function here is a pure function of its arguments; the frame counter is
// owned by whichever playback driver calls in.
package timeline

import "fmt"

// Phase identifies a visual segment of the video.
type Phase int

const (
	Intro Phase = iota
	ItemSlide
	Summary
)

func (p Phase) String() string {
	switch p {
	case Intro:
		return "intro"
	case ItemSlide:
		return "slide"
	case Summary:
		return "summary"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Timing holds the fixed length, in frames, of each phase.
type Timing struct {
	Intro   int `yaml:"intro" toml:"intro" json:"intro"`
	Slide   int `yaml:"slide" toml:"slide" json:"slide"`
	Summary int `yaml:"summary" toml:"summary" json:"summary"`
}

// Presets are the named timings a config may refer to.
var Presets = map[string]Timing{
	"preview":   {Intro: 80, Slide: 100, Summary: 150},
	"cinematic": {Intro: 130, Slide: 100, Summary: 150},
	"slides":    {Intro: 80, Slide: 100, Summary: 0},
}

// DefaultPreset is used when a config names no timing.
const DefaultPreset = "preview"

// Default returns the timing shared by the preview and the offline renderer.
func Default() Timing {
	return Presets[DefaultPreset]
}

// Preset looks up a named timing.
func Preset(name string) (Timing, error) {
	t, ok := Presets[name]
	if !ok {
		return Timing{}, fmt.Errorf("unknown timing preset %q", name)
	}
	return t, nil
}

// Validate rejects timings that cannot partition a frame range.
func (t Timing) Validate() error {
	if t.Intro < 0 || t.Summary < 0 {
		return fmt.Errorf("timing: intro and summary must be non-negative (got %d, %d)", t.Intro, t.Summary)
	}
	if t.Slide <= 0 {
		return fmt.Errorf("timing: slide length must be positive (got %d)", t.Slide)
	}
	if t.Intro+t.Summary == 0 {
		return fmt.Errorf("timing: intro and summary cannot both be empty")
	}
	return nil
}

// Duration is the total frame count for n records: Intro + n*Slide + Summary.
func (t Timing) Duration(n int) int {
	return t.Intro + n*t.Slide + t.Summary
}

// SummaryStart is the first frame of the summary phase.
func (t Timing) SummaryStart(n int) int {
	return t.Intro + n*t.Slide
}

// Position is a frame resolved to its phase. Index is the record index for
// ItemSlide and zero otherwise; Offset is the frame relative to the phase start.
type Position struct {
	Phase  Phase
	Index  int
	Offset int
}

func (p Position) String() string {
	if p.Phase == ItemSlide {
		return fmt.Sprintf("%s[%d]+%d", p.Phase, p.Index, p.Offset)
	}
	return fmt.Sprintf("%s+%d", p.Phase, p.Offset)
}

// Resolve maps frame (>= 0) to its phase for n records. Phase windows are
// half-open, so a boundary frame belongs to the phase that starts there.
// Frames past the end resolve into Summary; clamping is the driver's job.
func (t Timing) Resolve(frame, n int) Position {
	if frame < t.Intro {
		return Position{Phase: Intro, Offset: frame}
	}
	local := frame - t.Intro
	if local < n*t.Slide {
		return Position{Phase: ItemSlide, Index: local / t.Slide, Offset: local % t.Slide}
	}
	return Position{Phase: Summary, Offset: local - n*t.Slide}
}

// Clamp limits frame to [0, Duration(n)-1].
func (t Timing) Clamp(frame, n int) int {
	last := t.Duration(n) - 1
	if frame > last {
		frame = last
	}
	if frame < 0 {
		frame = 0
	}
	return frame
}

// Window is one phase laid out on the frame axis as [Start, Start+Length).
type Window struct {
	Phase  Phase `yaml:"phase" json:"phase"`
	Index  int   `yaml:"index" json:"index"`
	Start  int   `yaml:"start" json:"start"`
	Length int   `yaml:"length" json:"length"`
}

// End is the first frame after the window.
func (w Window) End() int {
	return w.Start + w.Length
}

// Windows lists the phases for n records in playback order. Empty phases are
// left out, so the windows always tile [0, Duration(n)) exactly.
func (t Timing) Windows(n int) []Window {
	windows := make([]Window, 0, n+2)
	if t.Intro > 0 {
		windows = append(windows, Window{Phase: Intro, Start: 0, Length: t.Intro})
	}
	for i := 0; i < n; i++ {
		windows = append(windows, Window{Phase: ItemSlide, Index: i, Start: t.Intro + i*t.Slide, Length: t.Slide})
	}
	if t.Summary > 0 {
		windows = append(windows, Window{Phase: Summary, Start: t.SummaryStart(n), Length: t.Summary})
	}
	return windows
}

// Stagger is the start frame of the index-th item of a cascading reveal.
func Stagger(base, index, step int) int {
	return base + index*step
}
