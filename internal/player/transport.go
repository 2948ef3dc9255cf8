// Package player holds the playback transport shared by the preview server
// and the terminal player, and the terminal player itself.
package player

import "github.com/ivlev/salesreel/internal/timeline"

// Transport is a frame counter with play, pause, seek and replay. It has no
// clock of its own: the driver calls Tick once per frame interval.
type Transport struct {
	frame    int
	duration int
	playing  bool
	// Loop restarts at frame 0 after the last frame instead of pausing.
	Loop bool
}

// NewTransport starts playing from frame 0, like the preview's autoplay.
func NewTransport(duration int, loop bool) *Transport {
	if duration < 1 {
		duration = 1
	}
	return &Transport{duration: duration, playing: true, Loop: loop}
}

func (t *Transport) Frame() int    { return t.frame }
func (t *Transport) Duration() int { return t.duration }
func (t *Transport) Playing() bool { return t.playing }

// Tick advances one frame while playing and reports whether the frame changed.
func (t *Transport) Tick() bool {
	if !t.playing {
		return false
	}
	if t.frame+1 < t.duration {
		t.frame++
		return true
	}
	if t.Loop {
		t.frame = 0
		return true
	}
	t.playing = false
	return false
}

func (t *Transport) Play() {
	if t.frame >= t.duration-1 && !t.Loop {
		t.frame = 0
	}
	t.playing = true
}

func (t *Transport) Pause() { t.playing = false }

func (t *Transport) Toggle() {
	if t.playing {
		t.Pause()
	} else {
		t.Play()
	}
}

// Seek jumps to frame, clamped to the video.
func (t *Transport) Seek(frame int) {
	if frame < 0 {
		frame = 0
	}
	if frame >= t.duration {
		frame = t.duration - 1
	}
	t.frame = frame
}

// Step moves by delta frames without changing the play state.
func (t *Transport) Step(delta int) { t.Seek(t.frame + delta) }

// Replay resets the counter to zero and plays.
func (t *Transport) Replay() {
	t.frame = 0
	t.playing = true
}

// SetDuration adopts a new length, for example after records were reloaded.
func (t *Transport) SetDuration(duration int) {
	if duration < 1 {
		duration = 1
	}
	t.duration = duration
	t.Seek(t.frame)
}

// Tick is what a driver publishes after every change.
type Tick struct {
	Frame    int     `json:"frame"`
	Duration int     `json:"duration"`
	Playing  bool    `json:"playing"`
	Phase    string  `json:"phase"`
	Index    int     `json:"index"`
	Offset   int     `json:"offset"`
	Seconds  float64 `json:"seconds"`
}

// Snapshot resolves the current frame against timing for n records.
func (t *Transport) Snapshot(timing timeline.Timing, n, fps int) Tick {
	pos := timing.Resolve(t.frame, n)
	tick := Tick{
		Frame:    t.frame,
		Duration: t.duration,
		Playing:  t.playing,
		Phase:    pos.Phase.String(),
		Index:    pos.Index,
		Offset:   pos.Offset,
	}
	if fps > 0 {
		tick.Seconds = float64(t.frame) / float64(fps)
	}
	return tick
}
