package figures

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"
)

// chartImage renders a go-chart chart to PNG and decodes it back so the
// result can be composed with other panels.
func chartImage(ch *chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func pieImage(pc *chart.PieChart) (image.Image, error) {
	var buf bytes.Buffer
	if err := pc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func maxOf(vs []float64) float64 {
	m := 0.0
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

// lineChart draws a single line-with-markers series on linear axes.
func lineChart(title, xName, yName string, xs, ys []float64, col color.RGBA, w, h int) (image.Image, error) {
	_, yMax := niceAxisBounds(0, maxOf(ys))
	ch := chart.Chart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 28}},
		Width:      w,
		Height:     h,
		XAxis:      chart.XAxis{Name: xName, Ticks: valueTicks(xs)},
		YAxis: chart.YAxis{
			Name:  yName,
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
			Ticks: niceTicks(0, yMax, 6),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys, Style: lineStyle(col)},
		},
	}
	return chartImage(&ch)
}

type dualAxisSpec struct {
	title string
	xName string
	xs    []float64
	name1 string
	y1    []float64
	c1    color.RGBA
	y1Max float64 // 0 means derive
	name2 string
	y2    []float64
	c2    color.RGBA
	y2Max float64 // 0 means derive
	w, h  int
}

// dualAxisChart draws one series against the primary Y axis and a second
// against the secondary, sharing the X axis.
func dualAxisChart(spec dualAxisSpec) (image.Image, error) {
	y1Max := spec.y1Max
	if y1Max == 0 {
		_, y1Max = niceAxisBounds(0, maxOf(spec.y1))
	}
	y2Max := spec.y2Max
	if y2Max == 0 {
		_, y2Max = niceAxisBounds(0, maxOf(spec.y2))
	}
	ch := chart.Chart{
		Title:      spec.title,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 28}},
		Width:      spec.w,
		Height:     spec.h,
		XAxis:      chart.XAxis{Name: spec.xName, Ticks: valueTicks(spec.xs)},
		YAxis: chart.YAxis{
			Name:  spec.name1,
			Range: &chart.ContinuousRange{Min: 0, Max: y1Max},
			Ticks: niceTicks(0, y1Max, 6),
		},
		YAxisSecondary: chart.YAxis{
			Name:  spec.name2,
			Range: &chart.ContinuousRange{Min: 0, Max: y2Max},
			Ticks: niceTicks(0, y2Max, 6),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: spec.name1, XValues: spec.xs, YValues: spec.y1, Style: lineStyle(spec.c1)},
			chart.ContinuousSeries{Name: spec.name2, XValues: spec.xs, YValues: spec.y2, YAxis: chart.YAxisSecondary, Style: lineStyle(spec.c2)},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return chartImage(&ch)
}
