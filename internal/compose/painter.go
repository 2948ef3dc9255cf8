// Package compose paints frame states onto RGBA buffers.
//
// All layout is expressed on a logical canvas that is 1920 units wide; the
// painter scales it to the output size, so a 1280x720 render is the same
// picture as a 1920x1080 one.
package compose

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"

	"github.com/ivlev/salesreel/internal/dataset"
	"github.com/ivlev/salesreel/internal/director"
	"github.com/ivlev/salesreel/internal/effects"
	"github.com/ivlev/salesreel/internal/timeline"
)

// LogicalWidth is the width of the canvas layouts are written against.
const LogicalWidth = 1920

// LogicalSize returns the logical canvas for an output size. The height
// follows the output aspect ratio.
func LogicalSize(width, height int) (float64, float64) {
	return LogicalWidth, LogicalWidth * float64(height) / float64(width)
}

// ArtSource supplies pictures; a nil source or a failed lookup falls back to
// drawn placeholders.
type ArtSource interface {
	BoxArt(ref string) (image.Image, error)
	Console(p dataset.Platform) (image.Image, error)
}

type fontKind int

const (
	fontRegular fontKind = iota
	fontBold
	fontMono
	fontMonoBold
	fontDisplay
)

// fontSet holds the parsed fonts; safe to share between painters.
type fontSet map[fontKind]*opentype.Font

func loadFonts() (fontSet, error) {
	sources := map[fontKind][]byte{
		fontRegular:  goregular.TTF,
		fontBold:     gobold.TTF,
		fontMono:     gomono.TTF,
		fontMonoBold: gomonobold.TTF,
		fontDisplay:  gosmallcaps.TTF,
	}
	fonts := make(fontSet, len(sources))
	for kind, ttf := range sources {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse font %d: %w", kind, err)
		}
		fonts[kind] = f
	}
	return fonts, nil
}

type faceKey struct {
	kind fontKind
	size float64
}

type resizeKey struct {
	src   image.Image
	w, h  int
	cover bool
}

// Painter draws frames. A painter caches font faces and resized pictures and
// is not safe for concurrent use; give each render worker its own via Clone.
type Painter struct {
	Width, Height int
	LogicalW      float64
	LogicalH      float64
	FPS           int
	Art           ArtSource
	Storyboard    *director.Storyboard

	scale   float64
	fonts   fontSet
	qr      image.Image
	faces   map[faceKey]font.Face
	resized map[resizeKey]image.Image
	filters map[filterKey]image.Image
}

// NewPainter prepares fonts and the credits QR code for an output size.
func NewPainter(width, height, fps int, art ArtSource) (*Painter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid output size %dx%d", width, height)
	}
	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	qr, err := qrcode.New(effects.CreditsURL, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("credits qr: %w", err)
	}
	qr.BackgroundColor = color.Transparent
	qr.ForegroundColor = slate400.at(1)
	qr.DisableBorder = true

	lw, lh := LogicalSize(width, height)
	p := &Painter{
		Width:    width,
		Height:   height,
		LogicalW: lw,
		LogicalH: lh,
		FPS:      fps,
		Art:      art,
		scale:    float64(width) / lw,
		fonts:    fonts,
		qr:       qr.Image(256),
	}
	p.resetCaches()
	return p, nil
}

// Clone returns a painter sharing fonts, art and storyboard but with its own
// caches.
func (p *Painter) Clone() *Painter {
	c := *p
	c.resetCaches()
	return &c
}

func (p *Painter) resetCaches() {
	p.faces = make(map[faceKey]font.Face)
	p.resized = make(map[resizeKey]image.Image)
	p.filters = make(map[filterKey]image.Image)
}

type filterKey struct {
	src  image.Image
	gray bool
}

// muted is the slightly desaturated console picture of a slide.
func (p *Painter) muted(img image.Image) image.Image {
	return p.filtered(filterKey{src: img}, func() image.Image { return imaging.AdjustSaturation(img, -30) })
}

// gray is the fully desaturated version, used for chart axis icons.
func (p *Painter) gray(img image.Image) image.Image {
	return p.filtered(filterKey{src: img, gray: true}, func() image.Image { return imaging.Grayscale(img) })
}

func (p *Painter) filtered(key filterKey, fn func() image.Image) image.Image {
	if m, ok := p.filters[key]; ok {
		return m
	}
	m := fn()
	p.filters[key] = m
	return m
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// Bounds is the output rectangle.
func (p *Painter) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height)
}

// NewAnimator returns an animator expressed on this painter's logical canvas.
func (p *Painter) NewAnimator(timing timeline.Timing, chart effects.ChartVariant) *effects.Animator {
	return effects.NewAnimator(p.FPS, p.LogicalW, p.LogicalH, timing, chart)
}

// Paint draws one frame into dst, which must match Bounds.
func (p *Painter) Paint(dst *image.RGBA, st effects.FrameState) error {
	if dst.Bounds().Size() != p.Bounds().Size() {
		return fmt.Errorf("frame buffer %v does not match %dx%d", dst.Bounds(), p.Width, p.Height)
	}
	dc := gg.NewContextForRGBA(dst)
	dc.Scale(p.scale, p.scale)

	switch {
	case st.Intro != nil:
		p.paintBackdrop(dc)
		p.paintIntro(dst, st.Intro)
	case st.Slide != nil:
		p.paintSlide(dc, st)
	case st.Summary != nil:
		p.paintSummary(dc, st.Summary)
	default:
		p.paintBackdrop(dc)
	}
	return nil
}

// Frame allocates a buffer and paints st into it.
func (p *Painter) Frame(st effects.FrameState) (*image.RGBA, error) {
	img := image.NewRGBA(p.Bounds())
	return img, p.Paint(img, st)
}

func (p *Painter) face(kind fontKind, size float64) font.Face {
	key := faceKey{kind, size}
	if f, ok := p.faces[key]; ok {
		return f
	}
	f, err := opentype.NewFace(p.fonts[kind], &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		// Parsed fonts only fail on nonsense sizes
		panic(fmt.Sprintf("font face %d@%.1f: %v", kind, size, err))
	}
	p.faces[key] = f
	return f
}

// drawImageRect draws img into the logical rectangle, scaled once to the
// device size it will occupy. cover crops to fill, otherwise the picture is
// fitted inside and anchored bottom-left.
func (p *Painter) drawImageRect(dc *gg.Context, img image.Image, x, y, w, h, alpha float64, cover bool) {
	if img == nil || alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	pw := max(1, int(math.Round(w*p.scale)))
	ph := max(1, int(math.Round(h*p.scale)))
	key := resizeKey{src: img, w: pw, h: ph, cover: cover}
	scaled, ok := p.resized[key]
	if !ok {
		if cover {
			scaled = imaging.Fill(img, pw, ph, imaging.Center, imaging.Lanczos)
		} else {
			scaled = imaging.Fit(img, pw, ph, imaging.Lanczos)
		}
		p.resized[key] = scaled
	}
	sh := scaled.Bounds().Dy()

	dc.Push()
	dc.Translate(x, y+h-float64(sh)/p.scale)
	dc.Scale(1/p.scale, 1/p.scale)
	dc.DrawImage(withAlpha(scaled, alpha), 0, 0)
	dc.Pop()
}

func withAlpha(img image.Image, alpha float64) image.Image {
	if alpha >= 1 {
		return img
	}
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.A = uint8(float64(c.A)*alpha + 0.5)
		return c
	})
}

// linear builds a gradient between two logical points. gg samples patterns in
// device space, so the points go through the current matrix first.
func linear(dc *gg.Context, x0, y0, x1, y1 float64, stops ...stop) gg.Gradient {
	dx0, dy0 := dc.TransformPoint(x0, y0)
	dx1, dy1 := dc.TransformPoint(x1, y1)
	g := gg.NewLinearGradient(dx0, dy0, dx1, dy1)
	for _, s := range stops {
		g.AddColorStop(s.at, s.c)
	}
	return g
}

func radial(dc *gg.Context, x, y, r0, r1 float64, stops ...stop) gg.Gradient {
	dx, dy := dc.TransformPoint(x, y)
	k := deviceScale(dc)
	g := gg.NewRadialGradient(dx, dy, r0*k, dx, dy, r1*k)
	for _, st := range stops {
		g.AddColorStop(st.at, st.c)
	}
	return g
}

type stop struct {
	at float64
	c  color.Color
}
