package compose

import "image/color"

type tone struct{ r, g, b uint8 }

func (t tone) at(alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: t.r, G: t.g, B: t.b, A: uint8(alpha*255 + 0.5)}
}

var (
	black      = tone{0, 0, 0}
	white      = tone{255, 255, 255}
	slate950   = tone{0x02, 0x06, 0x17}
	slate900   = tone{0x0f, 0x17, 0x2a}
	slate800   = tone{0x1e, 0x29, 0x3b}
	slate700   = tone{0x33, 0x41, 0x55}
	slate600   = tone{0x47, 0x55, 0x69}
	slate500   = tone{0x64, 0x74, 0x8b}
	slate400   = tone{0x94, 0xa3, 0xb8}
	slate300   = tone{0xcb, 0xd5, 0xe1}
	slate200   = tone{0xe2, 0xe8, 0xf0}
	emerald900 = tone{0x06, 0x4e, 0x3b}
	emerald600 = tone{0x05, 0x96, 0x69}
	emerald500 = tone{0x10, 0xb9, 0x81}
	emerald400 = tone{0x34, 0xd3, 0x99}
	emerald200 = tone{0xa7, 0xf3, 0xd0}
	emerald100 = tone{0xd1, 0xfa, 0xe5}
	yellow600  = tone{0xca, 0x8a, 0x04}
	yellow500  = tone{0xea, 0xb3, 0x08}
	yellow400  = tone{0xfa, 0xcc, 0x15}
	amber400   = tone{0xfb, 0xbf, 0x24}
	amber600   = tone{0xd9, 0x77, 0x06}
	purple950  = tone{0x3b, 0x07, 0x64}
	violet900  = tone{0x4c, 0x1d, 0x95}
	blue900    = tone{0x1e, 0x3a, 0x8a}
)
