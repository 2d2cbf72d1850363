package figures

import (
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/zccadle/SC-DLAC/src/datasets"
)

// logXPlot prepares a gonum plot with a log-scale X axis ticked at the
// sampled values.
func logXPlot(title, xLabel, yLabel string, xs []float64) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plotTicks(xs)
	p.Add(plotter.NewGrid())
	return p
}

func renderEncryptionDecryption(d *datasets.Data) (image.Image, error) {
	sizes := make([]float64, 0, len(d.Performance.EncryptDecrypt))
	enc := make([]float64, 0, len(d.Performance.EncryptDecrypt))
	dec := make([]float64, 0, len(d.Performance.EncryptDecrypt))
	for _, s := range d.Performance.EncryptDecrypt {
		sizes = append(sizes, s.SizeKB)
		enc = append(enc, s.EncryptMs)
		dec = append(dec, s.DecryptMs)
	}
	p := logXPlot("Encryption and Decryption Performance", "Data Size (KB)", "Time (ms)", sizes)
	if err := addLinePoints(p, "Encryption", sizes, enc, colDeepBlue); err != nil {
		return nil, err
	}
	if err := addLinePoints(p, "Decryption", sizes, dec, colRust); err != nil {
		return nil, err
	}
	return plotImage(p, 1000, 600), nil
}

func renderZKProofPerformance(d *datasets.Data) (image.Image, error) {
	lvls := make([]float64, 0, len(d.Performance.ZKProofOps))
	gen := make([]float64, 0, len(d.Performance.ZKProofOps))
	val := make([]float64, 0, len(d.Performance.ZKProofOps))
	for _, op := range d.Performance.ZKProofOps {
		lvls = append(lvls, op.Complexity)
		gen = append(gen, op.GenerateMs)
		val = append(val, op.ValidateMs)
	}
	p := logXPlot("ZK Proof Generation and Validation Performance", "Proof Complexity Level", "Time (ms)", lvls)
	if err := addLinePoints(p, "Proof Generation", lvls, gen, colMidBlue); err != nil {
		return nil, err
	}
	if err := addLinePoints(p, "Proof Validation", lvls, val, colBrown); err != nil {
		return nil, err
	}
	return plotImage(p, 1000, 600), nil
}

func renderZKProofScaling(d *datasets.Data) (image.Image, error) {
	sc := d.Performance.ZKScaling
	panel := func(title, yLabel string, ys []float64, col color.RGBA) (image.Image, error) {
		p := plot.New()
		p.Title.Text = title
		p.X.Label.Text = "Request Submission Rate (RPS)"
		p.Y.Label.Text = yLabel
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Add(plotter.NewGrid())
		if err := addLinePoints(p, "", sc.Rates, ys, col); err != nil {
			return nil, err
		}
		return plotImage(p, 720, 560), nil
	}
	left, err := panel("ZK Proof Latency vs Request Rate", "Latency (ms)", sc.LatencyMs, colBlue)
	if err != nil {
		return nil, err
	}
	right, err := panel("ZK Proof Throughput vs Request Rate", "Throughput (tx/s)", sc.ThroughputTPS, colPurple)
	if err != nil {
		return nil, err
	}
	return sideBySide(left, right), nil
}

func renderSystemResponsiveness(d *datasets.Data) (image.Image, error) {
	r := d.Performance.Responsiveness
	left, err := lineChart("Transaction Latency vs. Concurrent Load",
		"Concurrent Transactions", "Avg. Latency (ms)",
		r.Concurrent, r.AvgLatencyMs, colBlue, 720, 560)
	if err != nil {
		return nil, err
	}
	right, err := lineChart("Transaction Throughput vs. Concurrent Load",
		"Concurrent Transactions", "Throughput (tx/s)",
		r.Concurrent, r.ThroughputTPS, colPurple, 720, 560)
	if err != nil {
		return nil, err
	}
	return sideBySide(left, right), nil
}
