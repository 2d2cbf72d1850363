package figures

import (
	"fmt"
	"image"
	"image/color"

	"github.com/zccadle/SC-DLAC/src/datasets"
)

func renderAccessFlowBreakdown(d *datasets.Data) (image.Image, error) {
	palette := blueShades
	entries := make([]barEntry, 0, len(d.AccessFlow.Components))
	for i, c := range d.AccessFlow.Components {
		entries = append(entries, barEntry{
			name:  c.Name,
			value: c.AvgMs,
			lo:    c.MinDelta,
			hi:    c.MaxDelta,
			color: palette[i%len(palette)],
			label: fmt.Sprintf("%.2f ms", c.AvgMs),
		})
	}
	p, err := verticalBars(barPanel{
		title:   "Access Flow Time Breakdown",
		xLabel:  "Component",
		yLabel:  "Time (ms)",
		entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, 1000, 600), nil
}

func renderAccessPolicyOperations(d *datasets.Data) (image.Image, error) {
	entries := make([]barEntry, 0, len(d.AccessFlow.Operations))
	for _, op := range d.AccessFlow.Operations {
		entries = append(entries, barEntry{
			name:  op.Name,
			value: op.AvgMs,
			color: colSkyBlue,
			label: fmt.Sprintf("%.2f ms", op.AvgMs),
		})
	}
	p, err := verticalBars(barPanel{
		title:   "Access Policy Operations",
		xLabel:  "Access Policy Operations",
		yLabel:  "Average Time (ms)",
		entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, 1000, 600), nil
}

func renderCombinedTransactionTimes(d *datasets.Data) (image.Image, error) {
	categoryColor := func(cat string) color.RGBA {
		if cat == "Data Operations" {
			return colPurple
		}
		return colSkyBlue
	}
	entries := make([]barEntry, 0, len(d.Performance.Combined))
	for _, op := range d.Performance.Combined {
		entries = append(entries, barEntry{
			name:  op.Name,
			value: op.AvgMs,
			color: categoryColor(op.Category),
			label: fmt.Sprintf("%.2f ms", op.AvgMs),
		})
	}
	p, err := verticalBars(barPanel{
		title:   "Transaction Times for Key Operations",
		xLabel:  "Operation Type",
		yLabel:  "Average Time (ms)",
		entries: entries,
		legend: []barLegend{
			{name: "Access Policy Operations", color: colSkyBlue},
			{name: "Data Operations", color: colPurple},
		},
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, 1100, 640), nil
}

func renderDataPolicyPerformance(d *datasets.Data) (image.Image, error) {
	p, err := verticalBars(barPanel{
		title:  "Data-Intensive vs. Non-Data-Intensive Policy Performance",
		yLabel: "Average Processing Time (ms)",
		entries: []barEntry{
			{name: "Data-Intensive Policy", value: d.Performance.DataPolicyMs, color: colRed, label: fmt.Sprintf("%.2f ms", d.Performance.DataPolicyMs)},
			{name: "Non-Data-Intensive Policy", value: d.Performance.PlainPolicyMs, color: colGreen, label: fmt.Sprintf("%.2f ms", d.Performance.PlainPolicyMs)},
		},
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, 800, 600), nil
}

func renderDeploymentGasCosts(d *datasets.Data) (image.Image, error) {
	entries := make([]barEntry, 0, len(d.Gas.Deployment))
	for _, g := range d.Gas.Deployment {
		entries = append(entries, barEntry{
			name:  g.Name,
			value: g.Gas,
			color: colSteelBlue,
			label: fmt.Sprintf("%.0f", g.Gas),
		})
	}
	p, err := verticalBars(barPanel{
		title:   "Smart Contract Deployment Gas Costs",
		xLabel:  "Smart Contract",
		yLabel:  "Gas Used",
		entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, 1000, 600), nil
}

func renderOperationalGasCosts(d *datasets.Data) (image.Image, error) {
	entries := make([]barEntry, 0, len(d.Gas.Operational))
	for _, g := range d.Gas.Operational {
		entries = append(entries, barEntry{
			name:  g.Name,
			value: g.Gas,
			color: colIndigo,
			label: fmt.Sprintf("%.0f", g.Gas),
		})
	}
	p, err := horizontalBars(barPanel{
		title:   "Operational Gas Costs for DACEMS Functions",
		xLabel:  "Gas Used",
		entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, 1100, 700), nil
}

func renderTransactionTimes(d *datasets.Data) (image.Image, error) {
	entries := make([]barEntry, 0, len(d.Performance.Transactions))
	for _, tx := range d.Performance.Transactions {
		lo, hi := sampleSpread(tx.AvgMs, tx.Samples)
		entries = append(entries, barEntry{
			name:  tx.Name,
			value: tx.AvgMs,
			lo:    lo,
			hi:    hi,
			color: colBlue,
			label: fmt.Sprintf("%.2f ms", tx.AvgMs),
		})
	}
	p, err := verticalBars(barPanel{
		title:   "Average Transaction Execution Times",
		xLabel:  "Operation Type",
		yLabel:  "Time (ms)",
		entries: entries,
	})
	if err != nil {
		return nil, err
	}
	return plotImage(p, 1000, 600), nil
}

func renderZKProofBreakdown(d *datasets.Data) (image.Image, error) {
	panel := func(title string, comps []datasets.ComponentTiming, palette []color.RGBA) (image.Image, error) {
		entries := make([]barEntry, 0, len(comps))
		for i, c := range comps {
			entries = append(entries, barEntry{
				name:  c.Name,
				value: c.AvgMs,
				lo:    c.MinDelta,
				hi:    c.MaxDelta,
				color: palette[i%len(palette)],
				label: fmt.Sprintf("%.2f ms", c.AvgMs),
			})
		}
		p, err := verticalBars(barPanel{
			title:   title,
			xLabel:  "Component",
			yLabel:  "Time (ms)",
			entries: entries,
		})
		if err != nil {
			return nil, err
		}
		return plotImage(p, 720, 560), nil
	}
	left, err := panel("Proof Generation Components", d.Performance.ZKComponents.Small, blueShades)
	if err != nil {
		return nil, err
	}
	right, err := panel("Validation Components", d.Performance.ZKComponents.Large, darkShades)
	if err != nil {
		return nil, err
	}
	return sideBySide(left, right), nil
}

// sampleSpread returns the distances from avg to the smallest and largest sample.
func sampleSpread(avg float64, samples []float64) (lo, hi float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	min, max := samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return avg - min, max - avg
}
