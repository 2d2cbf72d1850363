package figures

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/zccadle/SC-DLAC/src/datasets"
)

// radarPlot draws scores on a polar grid, one spoke per metric, scaled 0-100.
func radarPlot(title string, scores []datasets.Score, line, fill color.RGBA) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	n := len(scores)
	if n < 3 {
		return nil, fmt.Errorf("radar needs at least 3 metrics, got %d", n)
	}
	// first spoke points straight up, the rest go clockwise
	point := func(i int, r float64) plotter.XY {
		a := math.Pi/2 - 2*math.Pi*float64(i)/float64(n)
		return plotter.XY{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	gridCol := color.RGBA{R: 203, G: 213, B: 224, A: 255}
	for _, r := range []float64{25, 50, 75, 100} {
		ring := make(plotter.XYs, n+1)
		for i := 0; i <= n; i++ {
			ring[i] = point(i%n, r)
		}
		l, err := plotter.NewLine(ring)
		if err != nil {
			return nil, err
		}
		l.Color = gridCol
		l.Width = vg.Points(0.5)
		p.Add(l)
	}
	for i := 0; i < n; i++ {
		l, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, point(i, 100)})
		if err != nil {
			return nil, err
		}
		l.Color = gridCol
		l.Width = vg.Points(0.5)
		p.Add(l)
	}

	outline := make(plotter.XYs, n)
	for i, s := range scores {
		outline[i] = point(i, s.Value)
	}
	poly, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, err
	}
	poly.Color = translucent(fill, 70)
	poly.LineStyle.Color = line
	poly.LineStyle.Width = vg.Points(2)
	p.Add(poly)

	var lbl plotter.XYLabels
	for i, s := range scores {
		lbl.XYs = append(lbl.XYs, point(i, 120))
		lbl.Labels = append(lbl.Labels, fmt.Sprintf("%s (%.1f)", s.Name, s.Value))
	}
	labels, err := plotter.NewLabels(lbl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(labels)

	p.X.Min, p.X.Max = -165, 165
	p.Y.Min, p.Y.Max = -165, 165
	return p, nil
}
