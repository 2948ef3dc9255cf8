package compose

import (
	"github.com/fogleman/gg"

	"github.com/ivlev/salesreel/internal/effects"
)

func (p *Painter) paintSummary(dc *gg.Context, st *effects.SummaryState) {
	w, h := p.LogicalW, p.LogicalH

	dc.SetColor(slate900.at(1))
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
	p.dotGrid(dc, 2, 0.05)

	dc.SetFontFace(p.face(fontDisplay, 36))
	dc.SetColor(black.at(0.5))
	drawTracked(dc, st.Title, w/2+1, 32+38+2, 3.6)
	dc.SetColor(yellow500.at(1))
	drawTracked(dc, st.Title, w/2, 32+38, 3.6)

	dc.SetFontFace(p.face(fontMono, 14))
	dc.SetColor(slate400.at(1))
	dc.DrawStringAnchored(st.Subtitle, w/2, 32+48+8+14, 0.5, 0)

	baseline := h - 40 - 128
	if st.Variant == effects.ChartCompact {
		baseline = h - 40 - 160
	}
	left := (w - st.ChartWidth) / 2
	dc.SetColor(slate800.at(1))
	dc.DrawRectangle(left, baseline, st.ChartWidth, 1)
	dc.Fill()

	for i := range st.Bars {
		b := &st.Bars[i]
		if b.Opacity <= 0 && b.Height <= 0 {
			continue
		}
		switch st.Variant {
		case effects.ChartCompact:
			p.drawCompactBar(dc, b, baseline)
		default:
			p.drawTimelineBar(dc, b, baseline, st.Variant == effects.ChartPlatform)
		}
	}

	// Credits, with a QR code pointing at the data source
	dc.SetFontFace(p.face(fontMono, 10))
	dc.SetColor(slate600.at(1))
	dc.DrawStringAnchored(st.Credits, w-16, h-16, 1, 0)
	p.drawImageRect(dc, p.qr, w-16-72, h-16-14-72, 72, 72, 0.6, false)
}

// drawTimelineBar is a bar with a floating thumbnail and value pill on top and
// the caption plus a console icon below the axis.
func (p *Painter) drawTimelineBar(dc *gg.Context, b *effects.BarState, baseline float64, platform bool) {
	a := b.Opacity
	slotCX := b.X + b.Width/2
	barW := b.Width * 0.75
	top := baseline - b.Height

	if b.Height > 0 {
		dc.DrawRoundedRectangle(slotCX-barW/2, top, barW, b.Height, min(2, b.Height/2))
		dc.SetFillStyle(linear(dc, 0, baseline, 0, top,
			stop{0, emerald900.at(a)},
			stop{0.5, emerald600.at(a)},
			stop{1, emerald400.at(a)},
		))
		dc.Fill()
		dc.SetColor(emerald200.at(0.5 * a))
		dc.DrawRectangle(slotCX-barW/2, top, barW, 1)
		dc.Fill()
	}

	// Thumbnail (records) or nothing (platforms), scaled from its bottom edge
	thumbW, thumbH := min(64, b.Width*0.9), min(80, b.Width*0.9*1.25)
	labelBottom := top - 15
	if !platform && b.Scale > 0 {
		tx, ty := slotCX-thumbW/2, top-15-thumbH
		dc.Push()
		dc.ScaleAbout(b.Scale, b.Scale, slotCX, top-15)
		dc.DrawRoundedRectangle(tx, ty, thumbW, thumbH, 4)
		dc.SetColor(slate800.at(a))
		dc.FillPreserve()
		setLineWidth(dc, 1)
		dc.SetColor(slate600.at(a))
		dc.Stroke()
		if p.Art != nil && b.BoxArtURL != "" {
			if img, err := p.Art.BoxArt(b.BoxArtURL); err == nil {
				p.drawImageRect(dc, img, tx, ty, thumbW, thumbH, a, true)
			}
		}
		dc.Pop()
		labelBottom = top - 15 - thumbH*b.Scale
	}

	if b.Value != "" {
		dc.SetFontFace(p.face(fontBold, 10))
		vw, _ := dc.MeasureString(b.Value)
		lx, ly := slotCX-vw/2-6, labelBottom-8-16
		dc.DrawRoundedRectangle(lx, ly, vw+12, 16, 4)
		dc.SetColor(black.at(0.8 * a))
		dc.FillPreserve()
		setLineWidth(dc, 1)
		dc.SetColor(yellow500.at(0.3 * a))
		dc.Stroke()
		dc.SetColor(yellow400.at(a))
		dc.DrawStringAnchored(b.Value, slotCX, ly+8, 0.5, 0.35)
	}

	dc.SetFontFace(p.face(fontMono, 12))
	dc.SetColor(slate400.at(a))
	dc.DrawStringAnchored(b.Caption, slotCX, baseline+28, 0.5, 0)

	if p.Art != nil {
		if img, err := p.Art.Console(b.Platform); err == nil {
			p.drawImageRect(dc, p.gray(img), slotCX-12, baseline+36, 24, 16, 0.5*a, false)
		}
	}
}

// drawCompactBar is a full-width bar with a rounded value on top and the
// short title written upwards below the axis.
func (p *Painter) drawCompactBar(dc *gg.Context, b *effects.BarState, baseline float64) {
	a := b.Opacity
	x := b.X + 2
	barW := b.Width - 4
	top := baseline - b.Height

	if b.Height > 0 {
		dc.DrawRoundedRectangle(x, top, barW, b.Height, min(2, b.Height/2))
		dc.SetFillStyle(linear(dc, 0, baseline, 0, top,
			stop{0, emerald900.at(1)},
			stop{1, emerald500.at(1)},
		))
		dc.Fill()
	}

	slotCX := b.X + b.Width/2
	if b.Value != "" {
		dc.SetFontFace(p.face(fontMonoBold, 14))
		dc.SetColor(yellow400.at(a))
		dc.DrawStringAnchored(b.Value, slotCX, top-9, 0.5, 0)
	}

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), slotCX, baseline+12)
	dc.SetFontFace(p.face(fontBold, 10))
	dc.SetColor(slate500.at(a))
	dc.DrawStringAnchored(b.Caption, slotCX, baseline+12, 1, 0.35)
	dc.Pop()
}
