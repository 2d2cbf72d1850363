package results

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeResultFile(t *testing.T, dir, name, content string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
	return path
}

func TestLoadLatest_PicksNewestModTime(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	writeResultFile(t, dir, "security-tests-20240101.json", `{"run":1}`, base.Add(-45*24*time.Hour))
	writeResultFile(t, dir, "security-tests-20240215.json", `{"run":2}`, base)

	ds, err := LoadLatest(dir, "security-tests-*.json")
	if err != nil {
		t.Fatalf("LoadLatest: %v", err)
	}
	if got := filepath.Base(ds.Path); got != "security-tests-20240215.json" {
		t.Fatalf("picked %s, want security-tests-20240215.json", got)
	}
	var doc struct {
		Run int `json:"run"`
	}
	if err := ds.Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Run != 2 {
		t.Fatalf("decoded run=%d, want 2", doc.Run)
	}
}

func TestLoadLatest_TieBreaksOnFilename(t *testing.T) {
	dir := t.TempDir()
	same := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	writeResultFile(t, dir, "perf-a.json", `{"v":"a"}`, same)
	writeResultFile(t, dir, "perf-b.json", `{"v":"b"}`, same)

	ds, err := LoadLatest(dir, "perf-*.json")
	if err != nil {
		t.Fatalf("LoadLatest: %v", err)
	}
	if got := filepath.Base(ds.Path); got != "perf-b.json" {
		t.Fatalf("tie broke to %s, want perf-b.json", got)
	}
}

func TestLoadLatest_NoMatch(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadLatest(dir, "security-tests-*.json")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("err=%v, want ErrNoMatch", err)
	}
}

func TestLoadLatest_ParseFailureSurfaced(t *testing.T) {
	dir := t.TempDir()
	writeResultFile(t, dir, "gas-20240101.json", `{"broken":`, time.Now())

	_, err := LoadLatest(dir, "gas-*.json")
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
	if errors.Is(err, ErrNoMatch) {
		t.Fatalf("parse failure reported as ErrNoMatch: %v", err)
	}
}

func TestLoadLatest_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeResultFile(t, dir, "security-tests-20240215.json", `{"score":97.87}`, time.Now().Add(-time.Hour))

	first, err := LoadLatest(dir, "security-tests-*.json")
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := LoadLatest(dir, "security-tests-*.json")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if string(first.Raw()) != string(second.Raw()) || first.Path != second.Path {
		t.Fatal("repeated load on unchanged directory returned different data")
	}
}

func TestLoadStore_SkipsAbsentAndBroken(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeResultFile(t, dir, "security-tests-20240215.json", `{"overallScore":97.87}`, now)
	writeResultFile(t, dir, "deployment-gas-costs-20240215.json", `not json`, now)

	st, err := LoadStore(dir)
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	if _, ok := st.Get("security"); !ok {
		t.Fatal("security dataset missing from store")
	}
	if _, ok := st.Get("deployment-gas"); ok {
		t.Fatal("broken deployment-gas dataset should be omitted")
	}
	if _, ok := st.Get("performance"); ok {
		t.Fatal("absent performance dataset should be omitted")
	}
}

func TestLoadStore_MissingDirIsEmpty(t *testing.T) {
	st, err := LoadStore(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("LoadStore on missing dir: %v", err)
	}
	if len(st) != 0 {
		t.Fatalf("store has %d entries, want 0", len(st))
	}
}
