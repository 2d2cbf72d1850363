package figures

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/zccadle/SC-DLAC/src/datasets"
)

const (
	dashPanelW = 760
	dashPanelH = 520
)

func passRatePanel(cats []datasets.SecurityCategory) (image.Image, error) {
	rateColor := func(v float64) color.RGBA {
		switch {
		case v >= 100:
			return colGreen
		case v >= 90:
			return colOrange
		default:
			return colRed
		}
	}
	entries := make([]barEntry, 0, len(cats))
	for _, c := range cats {
		entries = append(entries, barEntry{
			name:  c.Label,
			value: c.PassRate,
			color: rateColor(c.PassRate),
			label: fmt.Sprintf("%.1f%%", c.PassRate),
		})
	}
	p, err := verticalBars(barPanel{
		title:   "Security Test Pass Rates by Category",
		yLabel:  "Pass Rate (%)",
		yMax:    110,
		entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, dashPanelW, dashPanelH), nil
}

func preventionPanel(title string, scores []datasets.Score) (image.Image, error) {
	entries := make([]barEntry, 0, len(scores))
	for _, s := range scores {
		entries = append(entries, barEntry{
			name:  s.Name,
			value: s.Value,
			color: colDarkGreen,
			label: fmt.Sprintf("%.1f%%", s.Value),
		})
	}
	p, err := horizontalBars(barPanel{
		title:   title,
		xLabel:  "Prevention Rate (%)",
		yMax:    110,
		entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, dashPanelW, dashPanelH), nil
}

func kpiPanel(title string, kpis []datasets.KPI) (image.Image, error) {
	palette := []color.RGBA{colBlue, colGreen, colPurple, colTeal, colOrange}
	entries := make([]barEntry, 0, len(kpis))
	for i, k := range kpis {
		entries = append(entries, barEntry{
			name:  k.Name,
			value: k.Value,
			color: palette[i%len(palette)],
			label: strconv.FormatFloat(k.Value, 'f', -1, 64) + k.Unit,
		})
	}
	p, err := verticalBars(barPanel{
		title:   title,
		yLabel:  "Value",
		yMax:    115,
		entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, dashPanelW, dashPanelH), nil
}

func zkRadarPanel(title string, scores []datasets.Score) (image.Image, error) {
	p, err := radarPlot(title, scores, colPurple, colPurple)
	if err != nil {
		return nil, err
	}
	return plotImage(p, dashPanelH, dashPanelH), nil
}

func loadPanel(title string, l datasets.LoadProfile) (image.Image, error) {
	return dualAxisChart(dualAxisSpec{
		title: title,
		xName: "Concurrent Users",
		xs:    l.Users,
		name1: "Avg Latency (ms)",
		y1:    l.AvgLatencyMs,
		c1:    colBlue,
		name2: "Success Rate (%)",
		y2:    l.SuccessRatePct,
		c2:    colRed,
		y2Max: 110,
		w:     dashPanelW,
		h:     dashPanelH,
	})
}

func responseTimesPanel(times []datasets.ComponentTiming) (image.Image, error) {
	entries := make([]barEntry, 0, len(times))
	for _, t := range times {
		entries = append(entries, barEntry{
			name:  t.Name,
			value: t.AvgMs,
			lo:    t.MinDelta,
			hi:    t.MaxDelta,
			color: colBlue,
			label: fmt.Sprintf("%.1f ms", t.AvgMs),
		})
	}
	p, err := verticalBars(barPanel{
		title:   "Operation Response Time Distribution (Mean +/- SD)",
		yLabel:  "Response Time (ms)",
		entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, dashPanelW, dashPanelH), nil
}

func comparisonPanel(title string, cmp datasets.Comparison) (image.Image, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Score (0-100)"
	p.Add(plotter.NewGrid())
	bw := vg.Points(14)
	ours, err := plotter.NewBarChart(plotter.Values(cmp.SCDLAC), bw)
	if err != nil {
		return nil, err
	}
	ours.Color = colBlue
	ours.Offset = -bw / 2
	ours.LineStyle.Width = 0
	trad, err := plotter.NewBarChart(plotter.Values(cmp.Traditional), bw)
	if err != nil {
		return nil, err
	}
	trad.Color = colGray
	trad.Offset = bw / 2
	trad.LineStyle.Width = 0
	p.Add(ours, trad)
	p.Legend.Add("SC-DLAC", ours)
	p.Legend.Add("Traditional", trad)
	p.Legend.Top = true
	p.NominalX(cmp.Categories...)
	p.X.Min, p.X.Max = -0.5, float64(len(cmp.Categories))-0.5
	p.Y.Min, p.Y.Max = 0, 110
	return plotImage(p, dashPanelW, dashPanelH), nil
}

func gasByOperationPanel(ops []datasets.GasEntry) (image.Image, error) {
	entries := make([]barEntry, 0, len(ops))
	for _, g := range ops {
		entries = append(entries, barEntry{
			name:  g.Name,
			value: g.Gas,
			color: colGold,
			label: fmt.Sprintf("%.0f", g.Gas),
		})
	}
	p, err := verticalBars(barPanel{
		title:   "Gas Cost by Operation Type",
		yLabel:  "Gas Used",
		entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, dashPanelW, dashPanelH), nil
}

func workflowSuccessPanel(rates []datasets.Score) (image.Image, error) {
	entries := make([]barEntry, 0, len(rates))
	for _, s := range rates {
		entries = append(entries, barEntry{
			name:  s.Name,
			value: s.Value,
			color: colTeal,
			label: fmt.Sprintf("%.1f%%", s.Value),
		})
	}
	p, err := verticalBars(barPanel{
		title:   "Healthcare Workflow Success Rates",
		yLabel:  "Success Rate (%)",
		yMax:    110,
		entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, dashPanelW, dashPanelH), nil
}

// emergencyTimelinePanel draws the access stages as a waterfall: each
// stage starts where the previous one finished.
func emergencyTimelinePanel(stages []datasets.StageTiming) (image.Image, error) {
	total := 0.0
	for _, s := range stages {
		total += s.TimeMs
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Emergency Access Timeline (Total: %.0fms)", total)
	p.X.Label.Text = "Time (ms)"
	p.Add(plotter.NewGrid())

	n := len(stages)
	palette := []color.RGBA{colBlue, colPurple, colTeal, colOrange, colGreen}
	invisible := color.NRGBA{}
	var labels plotter.XYLabels
	cum := 0.0
	for i, s := range stages {
		row := n - 1 - i // first stage on top
		base := make(plotter.Values, n)
		seg := make(plotter.Values, n)
		base[row] = cum
		seg[row] = s.TimeMs
		bb, err := plotter.NewBarChart(base, vg.Points(18))
		if err != nil {
			return nil, err
		}
		bb.Horizontal = true
		bb.Color = invisible
		bb.LineStyle.Width = 0
		sb, err := plotter.NewBarChart(seg, vg.Points(18))
		if err != nil {
			return nil, err
		}
		sb.Horizontal = true
		sb.Color = palette[i%len(palette)]
		sb.LineStyle.Width = 0
		sb.StackOn(bb)
		p.Add(bb, sb)
		labels.XYs = append(labels.XYs, plotter.XY{X: cum + s.TimeMs/2, Y: float64(row)})
		labels.Labels = append(labels.Labels, fmt.Sprintf("%.0fms", s.TimeMs))
		cum += s.TimeMs
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].XAlign = text.XCenter
		l.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(l)

	names := make([]string, n)
	for i, s := range stages {
		names[n-1-i] = s.Stage
	}
	p.NominalY(names...)
	p.Y.Min, p.Y.Max = -0.5, float64(n)-0.5
	p.X.Min, p.X.Max = 0, total*1.05
	return plotImage(p, dashPanelW, dashPanelH), nil
}

func multiUserPanel(mu datasets.MultiUser) (image.Image, error) {
	return dualAxisChart(dualAxisSpec{
		title: "Multi-User Workflow Scalability",
		xName: "Concurrent Users",
		xs:    mu.Users,
		name1: "Workflow Time (s)",
		y1:    mu.WorkflowSec,
		c1:    colTeal,
		name2: "Throughput (workflows/s)",
		y2:    mu.ThroughputWPS,
		c2:    colOrange,
		w:     dashPanelW,
		h:     dashPanelH,
	})
}

func rolePiePanel(roles []datasets.Score) (image.Image, error) {
	total := 0.0
	for _, r := range roles {
		total += r.Value
	}
	vals := make([]chart.Value, 0, len(roles))
	for _, r := range roles {
		vals = append(vals, chart.Value{
			Value: r.Value,
			Label: fmt.Sprintf("%s %.1f%%", r.Name, 100*r.Value/total),
		})
	}
	pc := chart.PieChart{Width: dashPanelH, Height: dashPanelH, Values: vals}
	img, err := pieImage(&pc)
	if err != nil {
		return nil, err
	}
	return drawCaption(img, "Healthcare Role Access Distribution"), nil
}

func renderSecurityAnalysis(d *datasets.Data) (image.Image, error) {
	a, err := passRatePanel(d.Security.Categories)
	if err != nil {
		return nil, err
	}
	prevTitle := fmt.Sprintf("Attack Prevention Effectiveness (Overall Score: %.2f%%)", d.Security.OverallScore)
	b, err := preventionPanel(prevTitle, d.Security.Prevention)
	if err != nil {
		return nil, err
	}
	c, err := kpiPanel("Key Performance Metrics", d.Security.KPIs)
	if err != nil {
		return nil, err
	}
	e, err := zkRadarPanel("Zero-Knowledge Proof Security Coverage", d.Security.ZKCoverage)
	if err != nil {
		return nil, err
	}
	return composeGrid("SC-DLAC Comprehensive Security Analysis", 2, []image.Image{a, b, c, e}), nil
}

func renderPerformanceComparison(d *datasets.Data) (image.Image, error) {
	a, err := responseTimesPanel(d.Performance.ResponseTimes)
	if err != nil {
		return nil, err
	}
	b, err := loadPanel("System Performance Under Load", d.Load)
	if err != nil {
		return nil, err
	}
	c, err := comparisonPanel("SC-DLAC vs Traditional Access Control Systems", d.Comparison)
	if err != nil {
		return nil, err
	}
	e, err := gasByOperationPanel(d.Gas.ByOperation)
	if err != nil {
		return nil, err
	}
	return composeGrid("SC-DLAC Performance Analysis and Comparison", 2, []image.Image{a, b, c, e}), nil
}

func renderHealthcareWorkflowAnalysis(d *datasets.Data) (image.Image, error) {
	a, err := workflowSuccessPanel(d.Workflows.SuccessRates)
	if err != nil {
		return nil, err
	}
	b, err := emergencyTimelinePanel(d.Workflows.EmergencyTimeline)
	if err != nil {
		return nil, err
	}
	c, err := multiUserPanel(d.Workflows.MultiUser)
	if err != nil {
		return nil, err
	}
	e, err := rolePiePanel(d.Workflows.RoleAccess)
	if err != nil {
		return nil, err
	}
	return composeGrid("SC-DLAC Healthcare Workflow Performance", 2, []image.Image{a, b, c, e}), nil
}

func renderExecutiveSummary(d *datasets.Data) (image.Image, error) {
	a, err := kpiPanel("Key Performance Indicators", d.Security.KPIs)
	if err != nil {
		return nil, err
	}
	b, err := loadPanel("System Performance Under Load", d.Load)
	if err != nil {
		return nil, err
	}
	c, err := preventionPanel("Security Attack Prevention Rates", d.Security.Prevention)
	if err != nil {
		return nil, err
	}
	e, err := comparisonPanel("SC-DLAC vs Traditional Access Control Systems", d.Comparison)
	if err != nil {
		return nil, err
	}
	return composeGrid("SC-DLAC Executive Summary", 2, []image.Image{a, b, c, e}), nil
}
