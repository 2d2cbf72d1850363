package figures

import (
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// plotImage rasterizes a gonum plot at exactly w x h pixels.
func plotImage(p *plot.Plot, w, h int) image.Image {
	c := vgimg.NewWith(vgimg.UseDPI(72), vgimg.UseWH(vg.Length(w), vg.Length(h)))
	p.Draw(vgdraw.New(c))
	return c.Image()
}

// errorPoints feeds plotter.NewYErrorBars: positions plus asymmetric
// low/high extents per point.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

type barEntry struct {
	name  string
	value float64
	lo    float64 // error bar extent below the value
	hi    float64 // error bar extent above the value
	color color.RGBA
	label string // optional annotation above the bar
}

type barLegend struct {
	name  string
	color color.RGBA
}

type barPanel struct {
	title   string
	xLabel  string
	yLabel  string
	yMax    float64 // 0 means derive from the data
	width   vg.Length
	entries []barEntry
	legend  []barLegend
}

// verticalBars builds a bar plot with optional per-bar colors, value
// annotations and asymmetric error bars. Bars sharing a color are drawn
// as one chart so a legend entry can point at the group.
func verticalBars(spec barPanel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = spec.title
	p.X.Label.Text = spec.xLabel
	p.Y.Label.Text = spec.yLabel
	p.Add(plotter.NewGrid())

	width := spec.width
	if width == 0 {
		width = vg.Points(30)
	}
	n := len(spec.entries)
	var colors []color.RGBA
	groups := map[color.RGBA]plotter.Values{}
	for i, e := range spec.entries {
		vals, ok := groups[e.color]
		if !ok {
			vals = make(plotter.Values, n)
			groups[e.color] = vals
			colors = append(colors, e.color)
		}
		vals[i] = e.value
	}
	charts := map[color.RGBA]*plotter.BarChart{}
	for _, col := range colors {
		bc, err := plotter.NewBarChart(groups[col], width)
		if err != nil {
			return nil, err
		}
		bc.Color = col
		bc.LineStyle.Width = 0
		p.Add(bc)
		charts[col] = bc
	}
	for _, l := range spec.legend {
		if bc, ok := charts[l.color]; ok {
			p.Legend.Add(l.name, bc)
			p.Legend.Top = true
		}
	}

	maxY := 0.0
	for _, e := range spec.entries {
		if v := e.value + e.hi; v > maxY {
			maxY = v
		}
	}
	top := spec.yMax
	if top == 0 {
		_, top = niceAxisBounds(0, maxY)
	}

	var errPts errorPoints
	for i, e := range spec.entries {
		if e.lo == 0 && e.hi == 0 {
			continue
		}
		errPts.XYs = append(errPts.XYs, plotter.XY{X: float64(i), Y: e.value})
		errPts.YErrors = append(errPts.YErrors, struct{ Low, High float64 }{e.lo, e.hi})
	}
	if len(errPts.XYs) > 0 {
		eb, err := plotter.NewYErrorBars(errPts)
		if err != nil {
			return nil, err
		}
		eb.LineStyle.Width = vg.Points(1)
		p.Add(eb)
	}

	pad := top * 0.015
	var labels plotter.XYLabels
	for i, e := range spec.entries {
		if e.label == "" {
			continue
		}
		labels.XYs = append(labels.XYs, plotter.XY{X: float64(i), Y: e.value + e.hi + pad})
		labels.Labels = append(labels.Labels, e.label)
	}
	if len(labels.Labels) > 0 {
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, err
		}
		for i := range l.TextStyle {
			l.TextStyle[i].XAlign = text.XCenter
		}
		p.Add(l)
	}

	names := make([]string, n)
	for i, e := range spec.entries {
		names[i] = e.name
	}
	p.NominalX(names...)
	p.X.Min, p.X.Max = -0.5, float64(n)-0.5
	p.Y.Min, p.Y.Max = 0, top
	return p, nil
}

// horizontalBars builds a horizontal bar plot. Entries are listed
// top-to-bottom, matching how a reader scans a ranked table.
func horizontalBars(spec barPanel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = spec.title
	p.X.Label.Text = spec.xLabel
	p.Y.Label.Text = spec.yLabel
	p.Add(plotter.NewGrid())

	width := spec.width
	if width == 0 {
		width = vg.Points(16)
	}
	n := len(spec.entries)
	// row 0 renders at the bottom, so reverse to keep the first entry on top
	rev := make([]barEntry, n)
	for i, e := range spec.entries {
		rev[n-1-i] = e
	}
	var colors []color.RGBA
	groups := map[color.RGBA]plotter.Values{}
	for i, e := range rev {
		vals, ok := groups[e.color]
		if !ok {
			vals = make(plotter.Values, n)
			groups[e.color] = vals
			colors = append(colors, e.color)
		}
		vals[i] = e.value
	}
	for _, col := range colors {
		bc, err := plotter.NewBarChart(groups[col], width)
		if err != nil {
			return nil, err
		}
		bc.Horizontal = true
		bc.Color = col
		bc.LineStyle.Width = 0
		p.Add(bc)
	}

	maxX := 0.0
	for _, e := range rev {
		if e.value > maxX {
			maxX = e.value
		}
	}
	top := spec.yMax
	if top == 0 {
		_, top = niceAxisBounds(0, maxX)
	}

	pad := top * 0.01
	var labels plotter.XYLabels
	for i, e := range rev {
		if e.label == "" {
			continue
		}
		labels.XYs = append(labels.XYs, plotter.XY{X: e.value + pad, Y: float64(i)})
		labels.Labels = append(labels.Labels, e.label)
	}
	if len(labels.Labels) > 0 {
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return nil, err
		}
		for i := range l.TextStyle {
			l.TextStyle[i].YAlign = text.YCenter
		}
		p.Add(l)
	}

	names := make([]string, n)
	for i, e := range rev {
		names[i] = e.name
	}
	p.NominalY(names...)
	p.Y.Min, p.Y.Max = -0.5, float64(n)-0.5
	p.X.Min, p.X.Max = 0, top
	return p, nil
}

// addThresholdLine draws a dashed horizontal reference line across the
// plot's current X range.
func addThresholdLine(p *plot.Plot, y float64, label string, col color.RGBA) error {
	l, err := plotter.NewLine(plotter.XYs{{X: p.X.Min, Y: y}, {X: p.X.Max, Y: y}})
	if err != nil {
		return err
	}
	l.Color = col
	l.Width = vg.Points(1)
	l.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(l)
	if label != "" {
		p.Legend.Add(label, l)
		p.Legend.Top = true
	}
	return nil
}

// addLinePoints adds one line-with-markers series and an optional legend entry.
func addLinePoints(p *plot.Plot, name string, xs, ys []float64, col color.RGBA) error {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.Color = col
	line.Width = vg.Points(2)
	scatter.GlyphStyle.Color = col
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(line, scatter)
	if name != "" {
		p.Legend.Add(name, line, scatter)
		p.Legend.Top = true
	}
	return nil
}
