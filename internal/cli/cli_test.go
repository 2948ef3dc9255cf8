package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/salesreel/internal/config"
	"github.com/ivlev/salesreel/internal/dataset"
	"github.com/ivlev/salesreel/internal/director"
	"github.com/ivlev/salesreel/internal/timeline"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestLoggerContext(t *testing.T) {
	assert.NotNil(t, loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestVideoFlagsApply(t *testing.T) {
	cfg := config.Default()
	cfg.Frames = timeline.Timing{Intro: 1, Slide: 2, Summary: 3}
	vf := videoFlags{preset: "9:16", fps: 60, timing: "cinematic", file: "records.yaml"}
	vf.apply(cfg)

	assert.Equal(t, 1080, cfg.Width)
	assert.Equal(t, 1920, cfg.Height)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, "cinematic", cfg.Timing)
	assert.Equal(t, timeline.Timing{}, cfg.Frames, "a timing flag replaces explicit frames")
	assert.Equal(t, config.ProviderFile, cfg.Provider.Kind)
	assert.Equal(t, "records.yaml", cfg.Provider.File)

	cfg = config.Default()
	(&videoFlags{preset: "4:5", width: 720}).apply(cfg)
	assert.Equal(t, 720, cfg.Width)
	assert.Equal(t, 1350, cfg.Height)
}

func TestRenderOptsApply(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, (&renderOpts{workers: 3, stats: true}).apply(cfg))
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.ShowStats)
	assert.Contains(t, cfg.OutputVideo, "salesreel_")

	cfg = config.Default()
	err := (&renderOpts{audio: filepath.Join(t.TempDir(), "missing.mp3")}).apply(cfg)
	assert.Error(t, err)
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	require.NoError(t, root.ExecuteContext(context.Background()))
	return out.String()
}

func TestExportToStdout(t *testing.T) {
	out := run(t, "export", "-o", "-")

	var records []dataset.SalesRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Len(t, records, 19)
	assert.Equal(t, "The Legend of Zelda: Four Swords Adventures", records[0].Title)
}

func TestExportFromFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	require.NoError(t, os.WriteFile(in, []byte("- {title: The Legend of Zelda, year: 1986, naSales: 7.54, platform: NES}\n"), 0644))
	outPath := filepath.Join(dir, "out.json")

	run(t, "export", "--file", in, "-o", outPath)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"naSales": 7.54`)
}

func TestTimelineCommand(t *testing.T) {
	out := run(t, "timeline", "--timing", "slides")
	assert.Contains(t, out, "PHASE")
	assert.Contains(t, out, "1980")
	assert.NotContains(t, out, "summary")
}

func TestStoryboardCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	run(t, "storyboard", "-o", path)

	sb, err := director.ReadStoryboard(path)
	require.NoError(t, err)
	assert.Len(t, sb.Scenes, 21)
	assert.Equal(t, 2130, sb.DurationFrames)
}

func TestStillCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.png")
	run(t, "still", "--width", "192", "--height", "108", "--frame", "100", "-o", path, "--assets", t.TempDir())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestInvalidConfigRejected(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"timeline", "--chart", "pie"})
	assert.Error(t, root.ExecuteContext(context.Background()))
}
