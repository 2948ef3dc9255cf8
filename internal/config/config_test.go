package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/salesreel/internal/effects"
	"github.com/ivlev/salesreel/internal/timeline"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	timing, err := cfg.ResolveTiming()
	require.NoError(t, err)
	assert.Equal(t, timeline.Timing{Intro: 80, Slide: 100, Summary: 150}, timing)

	chart, err := cfg.ChartVariant()
	require.NoError(t, err)
	assert.Equal(t, effects.ChartTimeline, chart)
}

func TestResolveTimingPrefersFrames(t *testing.T) {
	cfg := Default()
	cfg.Timing = "cinematic"
	timing, err := cfg.ResolveTiming()
	require.NoError(t, err)
	assert.Equal(t, 130, timing.Intro)

	cfg.Frames = timeline.Timing{Intro: 10, Slide: 20, Summary: 30}
	timing, err = cfg.ResolveTiming()
	require.NoError(t, err)
	assert.Equal(t, cfg.Frames, timing)

	cfg.Frames = timeline.Timing{Intro: 10}
	_, err = cfg.ResolveTiming()
	assert.Error(t, err)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.FPS = 0
	cfg.Width = 1279
	cfg.Chart = "pie"
	cfg.Provider.Kind = "ftp"
	cfg.Cache.Kind = CacheRedis
	cfg.ArtFocus = "faces"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"fps", "even", "pie", "ftp", "redis_addr", "faces"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidateProviderRequirements(t *testing.T) {
	cfg := Default()
	cfg.Provider.Kind = ProviderFile
	assert.Error(t, cfg.Validate())
	cfg.Provider.File = "records.json"
	assert.NoError(t, cfg.Validate())

	cfg.Provider.Kind = ProviderMongo
	assert.Error(t, cfg.Validate())
	cfg.Provider.MongoURI = "mongodb://localhost:27017"
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salesreel.yaml")
	data := `
width: 1280
height: 720
timing: slides
chart: platform
provider:
  kind: file
  file: records.yaml
  watch: true
  timeout: 5s
cache:
  kind: none
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 720, cfg.Height)
	assert.Equal(t, 30, cfg.FPS, "defaults survive")
	assert.Equal(t, "slides", cfg.Timing)
	assert.Equal(t, ProviderFile, cfg.Provider.Kind)
	assert.True(t, cfg.Provider.Watch)
	assert.Equal(t, 5*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "gemini-2.5-flash", cfg.Provider.Model)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salesreel.toml")
	data := `
fps = 60
chart = "compact"

[frames]
intro = 40
slide = 50
summary = 60

[server]
addr = ":9090"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, ":9090", cfg.Server.Addr)

	timing, err := cfg.ResolveTiming()
	require.NoError(t, err)
	assert.Equal(t, 40+2*50+60, timing.Duration(2))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "salesreel.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestAutoQuality(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 23, cfg.AutoQuality())
	cfg.VideoEncoder = "h264_videotoolbox"
	assert.Equal(t, 75, cfg.AutoQuality())
	cfg.VideoEncoder = "h264_nvenc"
	assert.Equal(t, 28, cfg.AutoQuality())
	cfg.Quality = 18
	assert.Equal(t, 18, cfg.AutoQuality())
}

func TestFrameParamsDuration(t *testing.T) {
	p := FrameParams{FPS: 30, Frames: 150}
	assert.Equal(t, 5.0, p.Duration())
	assert.Equal(t, 0.0, FrameParams{Frames: 10}.Duration())
}
