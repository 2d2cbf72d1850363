package figures

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Published palette used across the result figures.
var (
	colBlue      = rgb(0x3182CE)
	colNavy      = rgb(0x1A365D)
	colDeepBlue  = rgb(0x2A4365)
	colDarkBlue  = rgb(0x2C5282)
	colMidBlue   = rgb(0x2B6CB0)
	colSkyBlue   = rgb(0x4299E1)
	colSteelBlue = rgb(0x4682B4)
	colIndigo    = rgb(0x5A67D8)
	colPurple    = rgb(0x805AD5)
	colRed       = rgb(0xE53E3E)
	colGreen     = rgb(0x38A169)
	colDarkGreen = rgb(0x1E6B3C)
	colOrange    = rgb(0xED8936)
	colRust      = rgb(0xC05621)
	colBrown     = rgb(0x9C4221)
	colTeal      = rgb(0x319795)
	colSlate     = rgb(0x2D3748)
	colGold      = rgb(0xD69E2E)
	colGray      = rgb(0x718096)
)

// Shade progressions used when adjacent bars want related colors.
var (
	blueShades = []color.RGBA{colBlue, colDarkBlue, colMidBlue, colNavy}
	darkShades = []color.RGBA{colSlate, colNavy}
)

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// translucent builds a see-through fill from a palette color. NRGBA keeps
// the channels non-premultiplied so lowering alpha does not shift the hue.
func translucent(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func chartColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// lineStyle renders a series as a solid line with dot markers.
func lineStyle(c color.RGBA) chart.Style {
	col := chartColor(c)
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    4,
	}
}
