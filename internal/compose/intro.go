package compose

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/ivlev/salesreel/internal/effects"
	"github.com/ivlev/salesreel/internal/system"
)

const (
	introTitle    = "LEGEND OF ZELDA"
	introSubtitle = "Sales History"
)

// paintIntro draws the intro on its own layer so the exit fade and blur
// apply to the whole card at once.
func (p *Painter) paintIntro(dst *image.RGBA, st *effects.IntroState) {
	if st.Opacity <= 0 {
		return
	}
	layer := system.GetImage(dst.Bounds())
	defer system.PutImage(layer)
	draw.Draw(layer, layer.Bounds(), image.Transparent, image.Point{}, draw.Src)

	dc := gg.NewContextForRGBA(layer)
	dc.Scale(p.scale, p.scale)
	p.drawIntro(dc, st)

	var src image.Image = layer
	if sigma := st.Blur * p.scale; sigma > 0.05 {
		src = imaging.Blur(layer, sigma)
	}
	mask := image.NewUniform(color.Alpha{A: uint8(st.Opacity*255 + 0.5)})
	draw.DrawMask(dst, dst.Bounds(), src, src.Bounds().Min, mask, image.Point{}, draw.Over)
}

func (p *Painter) drawIntro(dc *gg.Context, st *effects.IntroState) {
	w, h := p.LogicalW, p.LogicalH
	cx, cy := w/2, h/2-64

	// Light shaft from the top
	dc.SetFillStyle(radial(dc, cx, 0, 0, 0.6*math.Hypot(w/2, h),
		stop{0, emerald500.at(0.1)},
		stop{1, emerald500.at(0)},
	))
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	// Pedestal
	top := cy - 192 + 140
	dc.SetColor(slate800.at(1))
	dc.MoveTo(cx-96+0.15*192, top)
	dc.LineTo(cx+96-0.15*192, top)
	dc.LineTo(cx+96, top+96)
	dc.LineTo(cx-96, top+96)
	dc.ClosePath()
	dc.Fill()
	setLineWidth(dc, 4)
	dc.SetColor(slate700.at(1))
	dc.DrawLine(cx-96+0.15*192, top+2, cx+96-0.15*192, top+2)
	dc.Stroke()
	dc.SetColor(black.at(0.5))
	dc.DrawRectangle(cx-32, top, 64, 4)
	dc.Fill()

	if st.ShockwaveOpacity > 0 {
		rx, ry := 125*st.ShockwaveScale, 20*st.ShockwaveScale
		dc.DrawEllipse(cx, top+20, rx, ry)
		dc.SetColor(emerald400.at(0.1 * st.ShockwaveOpacity))
		dc.FillPreserve()
		setLineWidth(dc, 2)
		dc.SetColor(emerald400.at(0.5 * st.ShockwaveOpacity))
		dc.Stroke()
	}

	// Sword: 128x384 box, rotating around its bottom edge
	dc.Push()
	dc.Translate(0, st.SwordY)
	dc.RotateAbout(gg.Radians(st.SwordRotate), cx, cy+192)
	dc.Translate(cx-64, cy-192)
	dc.Scale(1.28, 1.28)
	drawSword(dc)
	dc.Pop()

	if st.TitleOpacity > 0 {
		p.drawIntroTitle(dc, st)
	}
}

func (p *Painter) drawIntroTitle(dc *gg.Context, st *effects.IntroState) {
	a := st.TitleOpacity
	cx := p.LogicalW / 2
	base := p.LogicalH + st.TitleY

	dc.SetFontFace(p.face(fontDisplay, 60))
	titleY := base - 190
	for _, off := range [][2]float64{{-3, 0}, {3, 0}, {0, -3}, {0, 3}} {
		dc.SetColor(yellow500.at(0.25 * a))
		drawTracked(dc, introTitle, cx+off[0], titleY+off[1], 12)
	}
	dc.SetColor(black.at(0.8 * a))
	drawTracked(dc, introTitle, cx, titleY+5, 12)
	dc.SetColor(yellow500.at(a))
	drawTracked(dc, introTitle, cx, titleY, 12)

	lineY := base - 160
	dc.SetFillStyle(linear(dc, cx-128, lineY, cx+128, lineY,
		stop{0, emerald400.at(0)},
		stop{0.5, emerald400.at(a)},
		stop{1, emerald400.at(0)},
	))
	dc.DrawRectangle(cx-128, lineY, 256, 1)
	dc.Fill()

	label := strings.ToUpper(introSubtitle)
	dc.SetFontFace(p.face(fontMono, 24))
	tw := trackedWidth(dc, label, 2.4)
	pillW, pillH := tw+48, 48.0
	pillY := base - 136
	dc.DrawRoundedRectangle(cx-pillW/2, pillY, pillW, pillH, pillH/2)
	dc.SetColor(black.at(0.6 * a))
	dc.FillPreserve()
	setLineWidth(dc, 1)
	dc.SetColor(emerald900.at(0.5 * a))
	dc.Stroke()
	dc.SetColor(emerald100.at(a))
	drawTracked(dc, label, cx, pillY+33, 2.4)

	dc.SetFontFace(p.face(fontMono, 12))
	dc.SetColor(slate500.at(0.8 * a))
	drawTracked(dc, "Total Volume: "+st.TotalSales+" Million Units", cx, base-52, 0.6)
}

// drawSword paints the sword in its own 100x300 unit space, blade down.
func drawSword(dc *gg.Context) {
	fillPoly(dc, slate200.at(1), 45, 260, 50, 290, 55, 260, 55, 80, 45, 80)
	setLineWidth(dc, 1)
	dc.SetColor(slate300.at(1))
	dc.DrawLine(50, 290, 50, 80)
	dc.Stroke()

	// Crossguard wings
	dc.MoveTo(30, 85)
	dc.QuadraticTo(20, 75, 20, 65)
	dc.LineTo(50, 75)
	dc.LineTo(80, 65)
	dc.QuadraticTo(80, 75, 70, 85)
	dc.LineTo(50, 95)
	dc.ClosePath()
	dc.SetColor(purple950.at(1))
	dc.Fill()
	fillPoly(dc, violet900.at(1), 30, 85, 50, 95, 70, 85)

	dc.DrawCircle(50, 85, 4)
	dc.SetColor(amber400.at(1))
	dc.FillPreserve()
	dc.SetColor(amber600.at(1))
	dc.Stroke()

	dc.DrawRoundedRectangle(47, 50, 6, 25, 1)
	dc.SetColor(blue900.at(1))
	dc.Fill()

	dc.DrawCircle(50, 48, 3)
	dc.SetColor(slate400.at(1))
	dc.Fill()
}

func fillPoly(dc *gg.Context, c color.Color, xy ...float64) {
	for i := 0; i+1 < len(xy); i += 2 {
		if i == 0 {
			dc.MoveTo(xy[i], xy[i+1])
		} else {
			dc.LineTo(xy[i], xy[i+1])
		}
	}
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()
}

// deviceScale is how many device pixels one unit spans under the current
// matrix. gg strokes in device space, so line widths are scaled by hand.
func deviceScale(dc *gg.Context) float64 {
	ux, uy := dc.TransformPoint(1, 0)
	ox, oy := dc.TransformPoint(0, 0)
	return math.Hypot(ux-ox, uy-oy)
}

func setLineWidth(dc *gg.Context, w float64) {
	dc.SetLineWidth(w * deviceScale(dc))
}

// trackedWidth measures s with extra spacing between letters.
func trackedWidth(dc *gg.Context, s string, tracking float64) float64 {
	n := 0
	total := 0.0
	for _, r := range s {
		w, _ := dc.MeasureString(string(r))
		total += w
		n++
	}
	if n > 1 {
		total += tracking * float64(n-1)
	}
	return total
}

// drawTracked draws s centred on cx with its baseline at y.
func drawTracked(dc *gg.Context, s string, cx, y, tracking float64) {
	x := cx - trackedWidth(dc, s, tracking)/2
	for _, r := range s {
		ch := string(r)
		dc.DrawString(ch, x, y)
		w, _ := dc.MeasureString(ch)
		x += w + tracking
	}
}
