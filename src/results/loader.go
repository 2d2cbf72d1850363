// Package results locates and parses the timestamped JSON result files an
// external benchmarking run leaves behind in a results directory. Each
// logical dataset is identified by a filename glob; only the most recently
// modified match per dataset is used.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNoMatch reports that no file in the results directory matched a
// dataset's pattern. Callers treat it as "dataset absent", not a failure.
var ErrNoMatch = errors.New("no matching results file")

// Dataset holds the parsed contents of one results file. Immutable once
// loaded; Decode unmarshals the raw document into a typed schema struct.
type Dataset struct {
	Category string
	Path     string
	ModTime  time.Time
	raw      json.RawMessage
}

// Decode unmarshals the dataset's raw JSON document into v.
func (d Dataset) Decode(v any) error {
	if err := json.Unmarshal(d.raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(d.Path), err)
	}
	return nil
}

// Raw returns the dataset's raw JSON document.
func (d Dataset) Raw() json.RawMessage { return d.raw }

// LoadLatest finds all files under dir matching pattern and returns the
// parsed contents of the most recently modified one. Modification-time ties
// break toward the lexicographically largest filename so selection stays
// deterministic regardless of filesystem ordering. Zero matches yield
// ErrNoMatch; a matched file that is not well-formed JSON yields a parse
// error rather than empty data.
func LoadLatest(dir, pattern string) (Dataset, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return Dataset{}, fmt.Errorf("glob %s: %w", pattern, err)
	}
	var (
		bestPath string
		bestTime time.Time
	)
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		mt := info.ModTime()
		if bestPath == "" || mt.After(bestTime) || (mt.Equal(bestTime) && m > bestPath) {
			bestPath = m
			bestTime = mt
		}
	}
	if bestPath == "" {
		return Dataset{}, fmt.Errorf("%s in %s: %w", pattern, dir, ErrNoMatch)
	}
	b, err := os.ReadFile(bestPath)
	if err != nil {
		return Dataset{}, fmt.Errorf("read %s: %w", bestPath, err)
	}
	if !json.Valid(b) {
		return Dataset{}, fmt.Errorf("parse %s: not well-formed JSON", bestPath)
	}
	return Dataset{Path: bestPath, ModTime: bestTime, raw: json.RawMessage(b)}, nil
}

// Category pairs a short dataset key with the filename glob that selects its
// files in the results directory.
type Category struct {
	Key     string
	Pattern string
}

// Categories lists every dataset the figure set can consume. Result files
// are named <category>-<timestamp>.json by the benchmarking scripts.
var Categories = []Category{
	{Key: "security", Pattern: "security-tests-*.json"},
	{Key: "performance", Pattern: "performance-results-*.json"},
	{Key: "deployment-gas", Pattern: "deployment-gas-costs-*.json"},
	{Key: "operational-gas", Pattern: "operational-gas-costs-*.json"},
	{Key: "access-flow", Pattern: "access-flow-performance-*.json"},
	{Key: "responsiveness", Pattern: "system-responsiveness-analysis-*.json"},
	{Key: "workflows", Pattern: "healthcare-workflows-*.json"},
	{Key: "emergency", Pattern: "emergency-access-scenarios-*.json"},
	{Key: "comprehensive", Pattern: "comprehensive-test-results-*.json"},
}

// Store collects the latest dataset per category for one invocation.
type Store map[string]Dataset

// Get returns the dataset for key and whether it was loaded.
func (s Store) Get(key string) (Dataset, bool) {
	d, ok := s[key]
	return d, ok
}

// LoadStore scans dir once and loads the latest file for every category.
// Absent categories are skipped with an info message; parse failures are
// logged as errors and the category omitted so charts that do not depend on
// it still render. A nonexistent directory yields an empty store.
func LoadStore(dir string) (Store, error) {
	if info, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			Infof("results dir %s not found; rendering from built-in values", dir)
			return Store{}, nil
		}
		return nil, fmt.Errorf("results dir %s: %w", dir, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("results dir %s: not a directory", dir)
	}
	st := Store{}
	for _, c := range Categories {
		ds, err := LoadLatest(dir, c.Pattern)
		if err != nil {
			if errors.Is(err, ErrNoMatch) {
				Infof("dataset %s: no files matching %s", c.Key, c.Pattern)
				continue
			}
			Errorf("dataset %s: %v", c.Key, err)
			continue
		}
		ds.Category = c.Key
		st[c.Key] = ds
		Infof("dataset %s: loaded %s", c.Key, filepath.Base(ds.Path))
	}
	Infof("loaded %d of %d datasets from %s", len(st), len(Categories), dir)
	return st, nil
}
