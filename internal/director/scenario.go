package director

import "github.com/ivlev/salesreel/internal/timeline"

// StoryboardVersion is written into every generated storyboard.
const StoryboardVersion = "1.0"

// Storyboard is the full scene list of a video, as written to YAML.
type Storyboard struct {
	Version        string          `yaml:"version"`
	FPS            int             `yaml:"fps"`
	Width          int             `yaml:"width"`
	Height         int             `yaml:"height"`
	Timing         timeline.Timing `yaml:"timing"`
	DurationFrames int             `yaml:"duration_frames"`
	Scenes         []Scene         `yaml:"scenes"`
}

// Scene is one phase window with its camera keyframes
type Scene struct {
	ID        int        `yaml:"id"`
	Phase     string     `yaml:"phase"`
	Index     int        `yaml:"index"`
	Title     string     `yaml:"title,omitempty"`
	From      int        `yaml:"from"`     // First frame
	Frames    int        `yaml:"frames"`   // Length in frames
	Duration  float64    `yaml:"duration"` // Length in seconds
	Keyframes []Keyframe `yaml:"keyframes"`
}

// Keyframe represents a camera position at a specific time
type Keyframe struct {
	Time  float64   `yaml:"time"`  // Time offset in seconds
	Focus string    `yaml:"focus"` // Description of focus region
	Rect  Rectangle `yaml:"rect"`  // Target rectangle
	Zoom  float64   `yaml:"zoom"`  // Zoom level (1.0 = no zoom)
}

// Rectangle represents a bounding box
type Rectangle struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// SceneAt returns the scene covering frame, or nil past the end.
func (s *Storyboard) SceneAt(frame int) *Scene {
	for i := range s.Scenes {
		sc := &s.Scenes[i]
		if frame >= sc.From && frame < sc.From+sc.Frames {
			return sc
		}
	}
	return nil
}
