package figures

import (
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/zccadle/SC-DLAC/src/datasets"
)

// TestEachFigureRenders renders every registry entry from the published
// dataset and sanity-checks the produced image.
func TestEachFigureRenders(t *testing.T) {
	d := datasets.Defaults()
	for _, f := range All() {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			img, err := f.Render(d)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if img == nil {
				t.Fatal("render returned nil image")
			}
			b := img.Bounds()
			if b.Dx() < 400 || b.Dy() < 300 {
				t.Fatalf("implausibly small image: %dx%d", b.Dx(), b.Dy())
			}
		})
	}
}

func TestRenderAll_WritesEveryFigure(t *testing.T) {
	outDir := t.TempDir()
	if err := RenderAll(datasets.Defaults(), outDir, nil); err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	for _, f := range All() {
		path := filepath.Join(outDir, f.File)
		fh, err := os.Open(path)
		if err != nil {
			t.Fatalf("missing output %s: %v", f.File, err)
		}
		img, format, err := image.Decode(fh)
		fh.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", f.File, err)
		}
		wantFormat := "png"
		if filepath.Ext(f.File) == ".jpg" {
			wantFormat = "jpeg"
		}
		if format != wantFormat {
			t.Errorf("%s: encoded as %s, want %s", f.File, format, wantFormat)
		}
		if img.Bounds().Dx() == 0 {
			t.Errorf("%s: empty image", f.File)
		}
	}
}

func TestRenderAll_OnlySubset(t *testing.T) {
	outDir := t.TempDir()
	only := []string{"deployment-gas-costs", "executive-summary"}
	if err := RenderAll(datasets.Defaults(), outDir, only); err != nil {
		t.Fatalf("RenderAll: %v", err)
	}
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(entries))
	}
	for _, want := range []string{"deployment_gas_costs.jpg", "executive_summary.png"} {
		if _, err := os.Stat(filepath.Join(outDir, want)); err != nil {
			t.Errorf("missing %s: %v", want, err)
		}
	}
}

func TestSelect_UnknownNameFails(t *testing.T) {
	if _, err := Select([]string{"no-such-figure"}); err == nil {
		t.Fatal("expected error for unknown figure name")
	}
}

func TestRegistryFilenamesUnique(t *testing.T) {
	seenName := map[string]bool{}
	seenFile := map[string]bool{}
	for _, f := range All() {
		if seenName[f.Name] {
			t.Errorf("duplicate figure name %q", f.Name)
		}
		if seenFile[f.File] {
			t.Errorf("duplicate output file %q", f.File)
		}
		seenName[f.Name] = true
		seenFile[f.File] = true
	}
}

func TestNiceAxisBounds(t *testing.T) {
	lo, hi := niceAxisBounds(0, 35)
	if lo > 0 {
		t.Errorf("lower bound %v should not exceed data min", lo)
	}
	if hi < 35 {
		t.Errorf("upper bound %v clips data max", hi)
	}
}

func TestNiceTicksCoverRange(t *testing.T) {
	ticks := niceTicks(0, 100, 6)
	if len(ticks) < 2 {
		t.Fatalf("expected at least 2 ticks, got %d", len(ticks))
	}
	for _, tk := range ticks {
		if tk.Label == "" {
			t.Errorf("tick at %v has empty label", tk.Value)
		}
	}
	if ticks[0].Value > 0 {
		t.Errorf("first tick %v above range start", ticks[0].Value)
	}
	if ticks[len(ticks)-1].Value < 100 {
		t.Errorf("last tick %v below range end", ticks[len(ticks)-1].Value)
	}
}

func TestComposeGridDimensions(t *testing.T) {
	p := image.NewRGBA(image.Rect(0, 0, 100, 50))
	out := composeGrid("", 2, []image.Image{p, p, p, p})
	wantW := 2*100 + 3*panelMargin
	wantH := 2*50 + 3*panelMargin
	if out.Bounds().Dx() != wantW || out.Bounds().Dy() != wantH {
		t.Fatalf("got %dx%d, want %dx%d", out.Bounds().Dx(), out.Bounds().Dy(), wantW, wantH)
	}
	titled := composeGrid("Title", 2, []image.Image{p, p})
	if titled.Bounds().Dy() <= 50+2*panelMargin {
		t.Fatal("title band missing from composed height")
	}
}

func TestRegistryIncludesSystemOverview(t *testing.T) {
	for _, f := range All() {
		if f.File != "figure_1_system_overview.png" {
			continue
		}
		img, err := f.Render(datasets.Defaults())
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if img.Bounds().Dx() < 1000 {
			t.Fatalf("overview should span the full grid width, got %d", img.Bounds().Dx())
		}
		return
	}
	t.Fatal("figure_1_system_overview.png missing from registry")
}

func TestNormalizedScore(t *testing.T) {
	if got := normalizedScore(97.87, false); got != 97.87 {
		t.Errorf("percentages pass through, got %v", got)
	}
	if got := normalizedScore(18.02, true); math.Abs(got-98.198) > 1e-9 {
		t.Errorf("latency 18.02 should normalize to 98.198, got %v", got)
	}
	if got := normalizedScore(15000, true); got != 0 {
		t.Errorf("latencies past the scale should clamp to 0, got %v", got)
	}
}

func TestTranslucentFillKeepsChannels(t *testing.T) {
	c := translucent(colGreen, 70)
	if c.A != 70 {
		t.Fatalf("alpha = %d, want 70", c.A)
	}
	if c.R != colGreen.R || c.G != colGreen.G || c.B != colGreen.B {
		t.Fatal("translucent fill must keep the color channels unscaled")
	}
}

func TestSampleSpread(t *testing.T) {
	lo, hi := sampleSpread(50, []float64{40, 50, 70})
	if lo != 10 || hi != 20 {
		t.Fatalf("got lo=%v hi=%v, want 10 and 20", lo, hi)
	}
	lo, hi = sampleSpread(50, nil)
	if lo != 0 || hi != 0 {
		t.Fatalf("empty samples should give zero spread, got %v %v", lo, hi)
	}
}
