// Package figures renders the published benchmark figures from a loaded
// dataset. Every figure is a named registry entry with a fixed output
// filename, so a caller can render the full set or any subset by name.
package figures

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/zccadle/SC-DLAC/src/datasets"
	"github.com/zccadle/SC-DLAC/src/results"
)

// Figure is one renderable chart and the filename it is written to.
type Figure struct {
	Name   string
	File   string
	Render func(*datasets.Data) (image.Image, error)
}

// All returns the full figure registry in render order.
func All() []Figure {
	return []Figure{
		{Name: "access-flow-breakdown", File: "access_flow_breakdown.jpg", Render: renderAccessFlowBreakdown},
		{Name: "access-policy-operations", File: "access_policy_operations.jpg", Render: renderAccessPolicyOperations},
		{Name: "combined-transaction-times", File: "combined_transaction_times.jpg", Render: renderCombinedTransactionTimes},
		{Name: "data-policy-performance", File: "data_policy_performance.jpg", Render: renderDataPolicyPerformance},
		{Name: "deployment-gas-costs", File: "deployment_gas_costs.jpg", Render: renderDeploymentGasCosts},
		{Name: "operational-gas-costs", File: "operational_gas_costs.jpg", Render: renderOperationalGasCosts},
		{Name: "encryption-decryption", File: "encryption_decryption_performance.jpg", Render: renderEncryptionDecryption},
		{Name: "zkproof-performance", File: "zkproof_performance.jpg", Render: renderZKProofPerformance},
		{Name: "zkproof-scaling", File: "zkproof_scaling.jpg", Render: renderZKProofScaling},
		{Name: "system-responsiveness", File: "system_responsiveness.jpg", Render: renderSystemResponsiveness},
		{Name: "transaction-times", File: "transaction_times.jpg", Render: renderTransactionTimes},
		{Name: "zkproof-breakdown", File: "zkproof_breakdown.jpg", Render: renderZKProofBreakdown},
		{Name: "security-analysis", File: "security_analysis.png", Render: renderSecurityAnalysis},
		{Name: "performance-comparison", File: "performance_comparison.png", Render: renderPerformanceComparison},
		{Name: "healthcare-workflow-analysis", File: "healthcare_workflow_analysis.png", Render: renderHealthcareWorkflowAnalysis},
		{Name: "executive-summary", File: "executive_summary.png", Render: renderExecutiveSummary},
		{Name: "system-overview", File: "figure_1_system_overview.png", Render: renderSystemOverview},
	}
}

// Select filters the registry down to the named figures. An unknown name
// is an error so typos do not silently render nothing.
func Select(names []string) ([]Figure, error) {
	all := All()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Figure, len(all))
	for _, f := range all {
		byName[f.Name] = f
	}
	out := make([]Figure, 0, len(names))
	for _, n := range names {
		f, ok := byName[n]
		if !ok {
			known := make([]string, 0, len(all))
			for _, k := range all {
				known = append(known, k.Name)
			}
			return nil, fmt.Errorf("unknown figure %q (known: %s)", n, strings.Join(known, ", "))
		}
		out = append(out, f)
	}
	return out, nil
}

// RenderAll renders the selected figures into outDir. Each figure renders
// independently: a failure is logged and the rest still render. The
// returned error is non-nil if any figure failed.
func RenderAll(d *datasets.Data, outDir string, only []string) error {
	figs, err := Select(only)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	failed := 0
	for _, f := range figs {
		img, err := f.Render(d)
		if err != nil {
			results.Errorf("figure %s: %v", f.Name, err)
			failed++
			continue
		}
		path := filepath.Join(outDir, f.File)
		if err := writeImage(img, path); err != nil {
			results.Errorf("figure %s: %v", f.Name, err)
			failed++
			continue
		}
		fmt.Printf("[figures] wrote %s\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d figures failed", failed, len(figs))
	}
	return nil
}

// writeImage encodes by extension: .jpg/.jpeg as JPEG, anything else as PNG.
func writeImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	var encErr error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		encErr = jpeg.Encode(f, img, &jpeg.Options{Quality: 92})
	default:
		encErr = png.Encode(f, img)
	}
	if cerr := f.Close(); encErr == nil {
		encErr = cerr
	}
	return encErr
}
