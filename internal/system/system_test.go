package system

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLatestFile(t *testing.T) {
	dir := t.TempDir()
	_, err := FindLatestAudio(dir)
	assert.Error(t, err)

	old := filepath.Join(dir, "old.mp3")
	fresh := filepath.Join(dir, "fresh.WAV")
	other := filepath.Join(dir, "cover.png")
	for _, p := range []string{old, fresh, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))

	latest, err := FindLatestAudio(dir)
	require.NoError(t, err)
	assert.Equal(t, fresh, latest)

	img, err := FindLatestFile(dir, []string{".png"})
	require.NoError(t, err)
	assert.Equal(t, other, img)
}

func TestPickEncoder(t *testing.T) {
	encoders := []struct {
		name string
		args string
	}{
		{"h264_videotoolbox", ""},
		{"h264_nvenc", ""},
	}
	name, _ := pickEncoder(" V....D h264_nvenc  NVIDIA NVENC H.264 encoder", encoders)
	assert.Equal(t, "h264_nvenc", name)

	name, _ = pickEncoder(" V....D libx264  libx264 H.264", encoders)
	assert.Equal(t, "libx264", name)
}

func TestRecommendedWorkers(t *testing.T) {
	assert.GreaterOrEqual(t, RecommendedWorkers(0), 1)
	assert.LessOrEqual(t, RecommendedWorkers(2), 2)
	assert.GreaterOrEqual(t, RecommendedWorkers(2), 1)
}

func TestTakeSnapshot(t *testing.T) {
	s := TakeSnapshot()
	assert.Positive(t, s.NumGoroutine)
	assert.Contains(t, s.String(), "goroutines")
}

func TestImagePoolReuse(t *testing.T) {
	rect := image.Rect(0, 0, 4, 2)
	img := GetImage(rect)
	require.Equal(t, rect, img.Rect)
	assert.Len(t, img.Pix, 4*2*4)
	PutImage(img)
	PutImage(nil)

	again := GetImage(rect)
	assert.Equal(t, rect, again.Rect)
}
