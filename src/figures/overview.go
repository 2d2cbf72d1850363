package figures

import (
	"fmt"
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/zccadle/SC-DLAC/src/datasets"
)

// normalizedScore maps a raw metric value onto the 0-100 scale the overview
// comparison plots. Percentages pass through; latency-style metrics invert
// so lower raw values score higher, bottoming out at zero.
func normalizedScore(v float64, lowerBetter bool) float64 {
	if !lowerBetter {
		return v
	}
	if v >= 1000 {
		return 0
	}
	return (1000 - v) / 10
}

func latencyProfilePanel(o datasets.Overview) (image.Image, error) {
	entries := make([]barEntry, 0, len(o.LatencyProfile))
	for _, c := range o.LatencyProfile {
		entries = append(entries, barEntry{
			name:  c.Name,
			value: c.AvgMs,
			lo:    c.MinDelta,
			hi:    c.MaxDelta,
			color: colSkyBlue,
		})
	}
	p, err := verticalBars(barPanel{
		title:   "(b) Operation Latency Profile",
		yLabel:  "Latency (ms)",
		yMax:    110,
		entries: entries,
	})
	if err != nil {
		return nil, err
	}
	if err := addThresholdLine(p, o.SLAThresholdMs, "SLA Threshold", colRed); err != nil {
		return nil, err
	}
	return plotImage(p, 500, 420), nil
}

func scalabilityPanel(l datasets.LoadProfile) (image.Image, error) {
	p := plot.New()
	p.Title.Text = "(c) System Scalability"
	p.X.Label.Text = "Concurrent Users"
	p.Y.Label.Text = "Throughput (tx/s)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plotTicks(l.ScaleUsers)
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	if err := addLinePoints(p, "", l.ScaleUsers, l.ScaleTPS, colBlue); err != nil {
		return nil, err
	}
	return plotImage(p, 500, 420), nil
}

// overviewComparisonPanel plots both systems on a shared normalized scale
// with the raw measurements annotated above each bar.
func overviewComparisonPanel(metrics []datasets.OverviewMetric, w, h int) (image.Image, error) {
	p := plot.New()
	p.Title.Text = "(d) SC-DLAC vs Traditional Systems Comparison"
	p.Y.Label.Text = "Normalized Score (0-100)"
	p.Add(plotter.NewGrid())

	n := len(metrics)
	ours := make(plotter.Values, n)
	trad := make(plotter.Values, n)
	names := make([]string, n)
	for i, m := range metrics {
		ours[i] = normalizedScore(m.SCDLAC, m.LowerBetter)
		trad[i] = normalizedScore(m.Traditional, m.LowerBetter)
		names[i] = m.Name
	}
	bw := vg.Points(18)
	ob, err := plotter.NewBarChart(ours, bw)
	if err != nil {
		return nil, err
	}
	ob.Color = colGreen
	ob.Offset = -bw / 2
	ob.LineStyle.Width = 0
	tb, err := plotter.NewBarChart(trad, bw)
	if err != nil {
		return nil, err
	}
	tb.Color = colOrange
	tb.Offset = bw / 2
	tb.LineStyle.Width = 0
	p.Add(ob, tb)
	p.Legend.Add("SC-DLAC", ob)
	p.Legend.Add("Traditional", tb)
	p.Legend.Top = true

	var labels plotter.XYLabels
	for i, m := range metrics {
		labels.XYs = append(labels.XYs,
			plotter.XY{X: float64(i) - 0.17, Y: ours[i] + 2},
			plotter.XY{X: float64(i) + 0.17, Y: trad[i] + 2})
		labels.Labels = append(labels.Labels,
			fmt.Sprintf("%g%s", m.SCDLAC, m.Unit),
			fmt.Sprintf("%g%s", m.Traditional, m.Unit))
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
	}
	p.Add(l)

	p.NominalX(names...)
	p.X.Min, p.X.Max = -0.5, float64(n)-0.5
	p.Y.Min, p.Y.Max = 0, 110
	return plotImage(p, w, h), nil
}

func renderSystemOverview(d *datasets.Data) (image.Image, error) {
	radar, err := radarPlot("(a) Security Coverage Analysis", d.Security.CoverageRadar, colGreen, colGreen)
	if err != nil {
		return nil, err
	}
	a := plotImage(radar, 420, 420)
	b, err := latencyProfilePanel(d.Overview)
	if err != nil {
		return nil, err
	}
	c, err := scalabilityPanel(d.Load)
	if err != nil {
		return nil, err
	}
	top := composeGrid("", 3, []image.Image{a, b, c})
	wide, err := overviewComparisonPanel(d.Overview.Metrics, top.Bounds().Dx()-2*panelMargin, 440)
	if err != nil {
		return nil, err
	}
	return composeGrid("Figure 1: SC-DLAC System Performance and Security Overview", 1,
		[]image.Image{top, wide}), nil
}
