package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zccadle/SC-DLAC/src/results"
)

func TestListCommand(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"list"})
	if err := root.Execute(); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestListCommand_ReportsDatasetAvailability(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "security-tests-20240215.json")
	if err := os.WriteFile(path, []byte(`{"overallScore": 97.87}`), 0o644); err != nil {
		t.Fatalf("write result file: %v", err)
	}

	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"list", "--results", dir})
	if err := root.Execute(); err != nil {
		t.Fatalf("list: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "security-tests-20240215.json") {
		t.Errorf("file-backed category not reported:\n%s", out)
	}
	if !strings.Contains(out, "built-in defaults") {
		t.Errorf("defaulted categories not reported:\n%s", out)
	}
	if strings.Count(out, "built-in defaults") != len(allCategoriesButSecurity()) {
		t.Errorf("expected every category except security to fall back to defaults:\n%s", out)
	}
}

func allCategoriesButSecurity() []string {
	keys := []string{}
	for _, c := range results.Categories {
		if c.Key != "security" {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

func TestRenderCommand_MissingResultsDirStillRenders(t *testing.T) {
	outDir := t.TempDir()
	root := newRootCmd()
	root.SetArgs([]string{
		"render",
		"--results", filepath.Join(t.TempDir(), "nonexistent"),
		"--out", outDir,
		"--only", "data-policy-performance",
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "data_policy_performance.jpg")); err != nil {
		t.Fatalf("expected figure output: %v", err)
	}
}

func TestRenderCommand_UnknownFigureFails(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{
		"render",
		"--results", t.TempDir(),
		"--out", t.TempDir(),
		"--only", "bogus",
	})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for unknown figure name")
	}
}
