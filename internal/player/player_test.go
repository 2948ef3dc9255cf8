package player

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/salesreel/internal/dataset"
	"github.com/ivlev/salesreel/internal/effects"
	"github.com/ivlev/salesreel/internal/timeline"
)

func TestTransportTickAndEnd(t *testing.T) {
	tr := NewTransport(3, false)
	assert.True(t, tr.Playing())
	assert.True(t, tr.Tick())
	assert.True(t, tr.Tick())
	assert.Equal(t, 2, tr.Frame())

	assert.False(t, tr.Tick(), "last frame stops playback")
	assert.False(t, tr.Playing())
	assert.Equal(t, 2, tr.Frame())

	tr.Play()
	assert.Equal(t, 0, tr.Frame(), "play at the end starts over")
}

func TestTransportLoop(t *testing.T) {
	tr := NewTransport(2, true)
	tr.Tick()
	assert.True(t, tr.Tick())
	assert.Equal(t, 0, tr.Frame())
	assert.True(t, tr.Playing())
}

func TestTransportSeekAndReplay(t *testing.T) {
	tr := NewTransport(100, false)
	tr.Pause()
	assert.False(t, tr.Tick())

	tr.Seek(150)
	assert.Equal(t, 99, tr.Frame())
	tr.Seek(-4)
	assert.Equal(t, 0, tr.Frame())
	tr.Step(30)
	tr.Step(-10)
	assert.Equal(t, 20, tr.Frame())
	assert.False(t, tr.Playing())

	tr.Replay()
	assert.Equal(t, 0, tr.Frame())
	assert.True(t, tr.Playing())

	tr.Seek(90)
	tr.SetDuration(50)
	assert.Equal(t, 49, tr.Frame())
	tr.SetDuration(0)
	assert.Equal(t, 1, tr.Duration())
}

func TestSnapshot(t *testing.T) {
	timing := timeline.Default()
	tr := NewTransport(timing.Duration(19), true)
	tr.Seek(2015)
	tick := tr.Snapshot(timing, 19, 30)
	assert.Equal(t, "summary", tick.Phase)
	assert.Equal(t, 35, tick.Offset)
	assert.InDelta(t, 67.17, tick.Seconds, 0.01)
}

func TestTimelineTable(t *testing.T) {
	records := dataset.Fixture()[:2]
	out := TimelineTable(timeline.Default(), records, 30)
	assert.Contains(t, out, "PHASE")
	assert.Contains(t, out, records[1].Title)
	assert.Contains(t, out, "slide 2")
	assert.Contains(t, out, "430")
	assert.Contains(t, out, "14.3s")

	empty := TimelineTable(timeline.Default(), nil, 30)
	assert.NotContains(t, empty, "slide")
	assert.Contains(t, empty, "230")
}

func newTestModel() Model {
	scene := effects.NewScene(dataset.Fixture())
	anim := effects.NewAnimator(30, 1920, 1080, timeline.Default(), effects.ChartTimeline)
	return NewModel(scene, anim)
}

func TestModelKeys(t *testing.T) {
	m := newTestModel()
	require.Equal(t, 2130, m.Transport.Duration())

	press := func(k tea.KeyMsg) {
		next, _ := m.Update(k)
		m = next.(Model)
	}
	press(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.Transport.Playing())

	press(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 30, m.Transport.Frame())
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'.'}})
	assert.Equal(t, 31, m.Transport.Frame())
	press(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.Transport.Frame())

	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Equal(t, 0, m.Transport.Frame())
	assert.True(t, m.Transport.Playing())

	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	assert.Equal(t, 1, m.Transport.Frame())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelViewPerPhase(t *testing.T) {
	m := newTestModel()
	m.Transport.Pause()

	m.Transport.Seek(79)
	assert.Contains(t, m.View(), "intro")

	// end of the last slide: Breath of the Wild at full count
	m.Transport.Seek(80 + 18*100 + 99)
	view := m.View()
	assert.Contains(t, view, "Breath of the Wild")
	assert.Contains(t, view, "35.08M")

	m.Transport.Seek(2129)
	view = m.View()
	assert.Contains(t, view, effects.SummaryTitle)
	assert.True(t, strings.Contains(view, "35.08m"))
}

func TestBarAndHelpers(t *testing.T) {
	assert.Equal(t, 10, len([]rune(stripANSI(bar(50, 10)))))
	assert.Equal(t, 10, len([]rune(stripANSI(bar(250, 10)))))
	assert.Equal(t, "abc…", truncate("abcdef", 4))
	assert.Equal(t, "   ", fade("abc", 0.2))
	assert.Equal(t, "abc", fade("abc", 0.9))
}

func stripANSI(s string) string {
	var b strings.Builder
	skip := false
	for _, r := range s {
		switch {
		case r == 0x1b:
			skip = true
		case skip && r == 'm':
			skip = false
		case !skip:
			b.WriteRune(r)
		}
	}
	return b.String()
}
