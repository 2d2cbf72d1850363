package figures

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	panelMargin = 12
	titleBand   = 34
)

// composeGrid lays panels out left-to-right, top-to-bottom on a white
// canvas, cols per row, with an optional centered title band on top.
func composeGrid(title string, cols int, panels []image.Image) image.Image {
	if cols < 1 {
		cols = 1
	}
	rows := (len(panels) + cols - 1) / cols
	cellW, cellH := 0, 0
	for _, p := range panels {
		if w := p.Bounds().Dx(); w > cellW {
			cellW = w
		}
		if h := p.Bounds().Dy(); h > cellH {
			cellH = h
		}
	}
	top := panelMargin
	if title != "" {
		top += titleBand
	}
	w := cols*cellW + (cols+1)*panelMargin
	h := top + rows*cellH + rows*panelMargin
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for i, p := range panels {
		col := i % cols
		row := i / cols
		// center the panel inside its cell
		x := panelMargin + col*(cellW+panelMargin) + (cellW-p.Bounds().Dx())/2
		y := top + row*(cellH+panelMargin) + (cellH-p.Bounds().Dy())/2
		r := image.Rect(x, y, x+p.Bounds().Dx(), y+p.Bounds().Dy())
		draw.Draw(canvas, r, p, p.Bounds().Min, draw.Over)
	}
	if title != "" {
		drawCenteredText(canvas, title, panelMargin+titleBand/2, colSlate)
	}
	return canvas
}

// sideBySide joins two panels into one row, matching the two-subplot
// layout of the standalone figures.
func sideBySide(left, right image.Image) image.Image {
	return composeGrid("", 2, []image.Image{left, right})
}
