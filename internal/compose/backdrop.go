package compose

import (
	"github.com/fogleman/gg"
)

// dotGrid covers the canvas with the emerald dot pattern.
func (p *Painter) dotGrid(dc *gg.Context, radius, alpha float64) {
	const spacing = 40
	dc.SetColor(emerald500.at(alpha))
	for y := spacing / 2.0; y < p.LogicalH; y += spacing {
		for x := spacing / 2.0; x < p.LogicalW; x += spacing {
			dc.DrawCircle(x, y, radius)
		}
	}
	dc.Fill()
}

// paintBackdrop is the shared dark background with dots and a vignette.
func (p *Painter) paintBackdrop(dc *gg.Context) {
	dc.SetColor(slate950.at(1))
	dc.DrawRectangle(0, 0, p.LogicalW, p.LogicalH)
	dc.Fill()

	p.dotGrid(dc, 2, 0.15)

	cx, cy := p.LogicalW/2, p.LogicalH/2
	r := max(cx, cy) * 1.2
	dc.SetFillStyle(radial(dc, cx, cy, 0, r,
		stop{0, slate950.at(0)},
		stop{0.4, slate950.at(0)},
		stop{1, slate950.at(1)},
	))
	dc.DrawRectangle(0, 0, p.LogicalW, p.LogicalH)
	dc.Fill()
}
