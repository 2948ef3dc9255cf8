package source

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/salesreel/internal/analyzer"
	"github.com/ivlev/salesreel/internal/dataset"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 80, A: 255})
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestImageDocumentDirectory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), 10, 20)
	writePNG(t, filepath.Join(dir, "a.png"), 30, 40)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	doc, err := Open(dir)
	require.NoError(t, err)
	defer doc.Close()
	require.Equal(t, 2, doc.Pages())

	b, err := doc.Bounds(0)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 40), b)

	_, err = doc.Render(2, 0)
	assert.Error(t, err)
}

func TestOpenRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cover.svg")
	require.NoError(t, os.WriteFile(path, []byte("<svg/>"), 0644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestFrontCoverTakesFirstScan(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "01_front.png"), 12, 16)
	writePNG(t, filepath.Join(dir, "02_back.png"), 40, 16)

	img, err := FrontCover(dir, 72)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
}

func TestArtLoaderCropsToAspect(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "wide.png"), 400, 300)

	l := NewArtLoader(dir, nil)
	l.Detector = analyzer.CenterDetector{}

	img, err := l.BoxArt("wide.png")
	require.NoError(t, err)
	assert.Equal(t, 225, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	again, err := l.BoxArt("wide.png")
	require.NoError(t, err)
	assert.Same(t, img, again, "decoded art is cached")
}

func TestArtLoaderErrors(t *testing.T) {
	l := NewArtLoader(t.TempDir(), nil)

	_, err := l.BoxArt("")
	assert.ErrorIs(t, err, ErrNoArt)

	_, err = l.BoxArt("https://example.com/art.png")
	assert.ErrorIs(t, err, ErrRemoteArt)

	_, err = l.BoxArt("missing.png")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = l.Console(dataset.PlatformWiiU)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestArtLoaderConsole(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "consoles", "wii_u.png"), 64, 32)

	l := NewArtLoader(dir, nil)
	img, err := l.Console(dataset.PlatformWiiU)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestPreloadCountsAvailableArt(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "one.png"), 30, 40)

	l := NewArtLoader(dir, nil)
	n := l.Preload([]dataset.SalesRecord{
		{Title: "A", BoxArtURL: "one.png"},
		{Title: "B", BoxArtURL: "two.png"},
		{Title: "C"},
	})
	assert.Equal(t, 1, n)
}

func TestConsoleSlug(t *testing.T) {
	assert.Equal(t, "wii_u", ConsoleSlug(dataset.PlatformWiiU))
	assert.Equal(t, "switch_2", ConsoleSlug(dataset.PlatformSwitch2))
	assert.Equal(t, "3ds", ConsoleSlug(dataset.Platform3DS))
}
