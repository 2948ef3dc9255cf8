package compose

import (
	"github.com/fogleman/gg"

	"github.com/ivlev/salesreel/internal/director"
	"github.com/ivlev/salesreel/internal/effects"
	"github.com/ivlev/salesreel/internal/renderer"
)

func (p *Painter) paintSlide(dc *gg.Context, fs effects.FrameState) {
	st := fs.Slide
	w, h := p.LogicalW, p.LogicalH

	dc.SetFillStyle(linear(dc, 0, 0, w, h,
		stop{0, slate900.at(1)},
		stop{0.5, slate950.at(1)},
		stop{1, black.at(1)},
	))
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
	p.dotGrid(dc, 1, 0.1)

	dc.Push()
	if cam, ok := p.camera(fs); ok && cam.Zoom != 1 {
		dc.ScaleAbout(cam.Zoom, cam.Zoom, cam.X, cam.Y)
	}
	p.drawSlideInfo(dc, st)
	p.drawSlideVisuals(dc, st)
	dc.Pop()
}

// camera samples the storyboard keyframes of the current scene, in logical
// coordinates.
func (p *Painter) camera(fs effects.FrameState) (renderer.CameraState, bool) {
	if p.Storyboard == nil || p.FPS <= 0 {
		return renderer.CameraState{}, false
	}
	// A state built with Animate has no absolute frame; the scene must still
	// match the resolved position.
	scene := p.Storyboard.SceneAt(fs.Frame)
	if scene == nil || scene.Phase != fs.Position.Phase.String() || scene.Index != fs.Position.Index {
		return renderer.CameraState{}, false
	}
	if len(scene.Keyframes) == 0 {
		return renderer.CameraState{}, false
	}
	cam := renderer.InterpolateKeyframes(scene.Keyframes, float64(fs.Position.Offset)/float64(p.FPS))
	if p.Storyboard.Width > 0 {
		k := p.LogicalW / float64(p.Storyboard.Width)
		cam.X *= k
		cam.Y *= k
	}
	return cam, true
}

func (p *Painter) drawSlideInfo(dc *gg.Context, st *effects.SlideState) {
	w, h := p.LogicalW, p.LogicalH
	half := w / 2

	dc.SetColor(slate900.at(0.2))
	dc.DrawRectangle(0, 0, half, h)
	dc.Fill()
	dc.SetColor(slate800.at(0.5))
	dc.DrawRectangle(half-1, 0, 1, h)
	dc.Fill()

	const pad = 64
	textW := half - 2*pad

	dc.SetFontFace(p.face(fontDisplay, 60))
	lines := dc.WordWrap(st.Record.Title, textW)
	const lineH = 66.0

	// Column is vertically centred: badges, title, sales block.
	blockH := 40 + 24 + float64(len(lines))*lineH + 32 + 32 + 56 + 8 + 16
	y := (h - blockH) / 2

	if a := st.DetailsOpacity; a > 0 {
		x := pad + st.DetailsX
		dc.SetFontFace(p.face(fontMonoBold, 18))
		platform := string(st.Record.Platform)
		pw, _ := dc.MeasureString(platform)
		dc.DrawRoundedRectangle(x, y, pw+24, 36, 4)
		dc.SetColor(yellow500.at(a))
		dc.Fill()
		dc.SetColor(black.at(a))
		dc.DrawStringAnchored(platform, x+12+pw/2, y+18, 0.5, 0.35)

		dc.SetFontFace(p.face(fontMono, 20))
		year := itoa(st.Record.Year)
		yw, _ := dc.MeasureString(year)
		yx := x + pw + 24 + 12
		dc.DrawRoundedRectangle(yx, y, yw+24, 36, 4)
		setLineWidth(dc, 1)
		dc.SetColor(slate700.at(a))
		dc.Stroke()
		dc.SetColor(slate400.at(a))
		dc.DrawStringAnchored(year, yx+12+yw/2, y+18, 0.5, 0.35)
	}
	y += 40 + 24

	if a := st.TitleOpacity; a > 0 {
		dc.SetFontFace(p.face(fontDisplay, 60))
		x := pad + st.TitleX
		for i, line := range lines {
			base := y + float64(i)*lineH + 52
			dc.SetColor(black.at(0.6 * a))
			dc.DrawString(line, x+2, base+4)
			dc.SetColor(white.at(a))
			dc.DrawString(line, x, base)
		}
	}
	y += float64(len(lines))*lineH + 32 + 32

	if a := st.SalesOpacity; a > 0 {
		y += st.SalesY
		dc.SetFontFace(p.face(fontBold, 14))
		dc.SetColor(emerald400.at(a))
		dc.DrawString("UNITS SOLD", pad, y+48)

		dc.SetFontFace(p.face(fontMono, 20))
		mw, _ := dc.MeasureString("m")
		dc.SetColor(slate500.at(a))
		dc.DrawString("m", pad+textW-mw, y+48)

		dc.SetFontFace(p.face(fontMonoBold, 48))
		vw, _ := dc.MeasureString(st.SalesText)
		dc.SetColor(white.at(a))
		dc.DrawString(st.SalesText, pad+textW-mw-4-vw, y+48)

		trackY := y + 56 + 8
		dc.DrawRoundedRectangle(pad, trackY, textW, 16, 8)
		dc.SetColor(slate800.at(a))
		dc.FillPreserve()
		setLineWidth(dc, 1)
		dc.SetColor(slate700.at(a))
		dc.Stroke()

		if fill := textW * st.BarFill / 100; fill > 0 {
			dc.DrawRoundedRectangle(pad, trackY, fill, 16, min(8, fill/2))
			dc.SetFillStyle(linear(dc, pad, trackY, pad+fill, trackY,
				stop{0, emerald600.at(a)},
				stop{1, emerald400.at(a)},
			))
			dc.Fill()
		}
	}
}

func (p *Painter) drawSlideVisuals(dc *gg.Context, st *effects.SlideState) {
	w, h := p.LogicalW, p.LogicalH
	half := w / 2

	// Console picture, bottom-left of the right half, slightly desaturated
	if st.ConsoleOpacity > 0 && p.Art != nil {
		if img, err := p.Art.Console(st.Record.Platform); err == nil {
			cw, ch := half*0.8, h*0.5
			p.drawImageRect(dc, p.muted(img), half+40, h-40-ch+st.ConsoleY, cw, ch, st.ConsoleOpacity, false)
		}
	}

	if st.VisualsOpacity <= 0 {
		return
	}
	panel := director.ArtPanelRect(int(w), int(h))
	px, py := float64(panel.X), float64(panel.Y)
	pw, ph := float64(panel.W), float64(panel.H)
	cx, cy := px+pw/2, py+ph/2
	a := st.VisualsOpacity

	dc.Push()
	dc.Translate(st.VisualsX, 0)
	dc.RotateAbout(gg.Radians(st.VisualsRotate), cx, cy)
	dc.ScaleAbout(st.VisualsScale, st.VisualsScale, cx, cy)

	// Drop shadow
	dc.DrawRoundedRectangle(px+8, py+16, pw, ph, 8)
	dc.SetColor(black.at(0.5 * a))
	dc.Fill()

	dc.DrawRoundedRectangle(px, py, pw, ph, 8)
	dc.SetColor(slate800.at(a))
	dc.Fill()

	drawn := false
	if p.Art != nil && st.Record.BoxArtURL != "" {
		if img, err := p.Art.BoxArt(st.Record.BoxArtURL); err == nil {
			p.drawImageRect(dc, img, px, py, pw, ph, a, true)
			drawn = true
		}
	}
	if !drawn {
		p.drawArtPlaceholder(dc, st.Record.Title, px, py, pw, ph, a)
	}

	// Sheen
	dc.DrawRoundedRectangle(px, py, pw, ph, 8)
	dc.SetFillStyle(linear(dc, px, py+ph, px+pw, py,
		stop{0, white.at(0)},
		stop{0.5, white.at(0.1 * a)},
		stop{1, white.at(0)},
	))
	dc.FillPreserve()
	setLineWidth(dc, 1)
	dc.SetColor(slate700.at(a))
	dc.Stroke()
	dc.Pop()
}

// drawArtPlaceholder stands in for missing box art: a small sword and the title.
func (p *Painter) drawArtPlaceholder(dc *gg.Context, title string, x, y, w, h, a float64) {
	dc.Push()
	dc.Translate(x+w/2-24, y+h/2-150)
	dc.Scale(0.48, 0.48)
	drawSword(dc)
	dc.Pop()
	// The sword is opaque; fade it with the panel colour.
	if a < 1 {
		dc.DrawRectangle(x+w/2-24, y+h/2-150, 48, 144)
		dc.SetColor(slate800.at(1 - a))
		dc.Fill()
	}

	dc.SetFontFace(p.face(fontDisplay, 20))
	dc.SetColor(yellow600.at(a))
	dc.DrawStringWrapped(title, x+w/2, y+h/2+24, 0.5, 0, w-64, 1.4, gg.AlignCenter)
}
