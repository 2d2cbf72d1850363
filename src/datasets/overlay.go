package datasets

import (
	"encoding/json"
	"sort"

	"github.com/zccadle/SC-DLAC/src/results"
)

// FromStore returns the default dataset values with every value the results
// store can supply overlaid on top. Categories the store lacks keep their
// defaults; a dataset whose shape does not decode is logged and skipped so a
// stale or hand-edited file never half-applies.
func FromStore(st results.Store) *Data {
	d := Defaults()
	overlays := []struct {
		key   string
		apply func(*Data, results.Dataset) error
	}{
		{"performance", applyPerformance},
		{"security", applySecurity},
		{"deployment-gas", applyDeploymentGas},
		{"operational-gas", applyOperationalGas},
		{"access-flow", applyAccessFlow},
		{"responsiveness", applyLoadProfile},
		{"workflows", applyWorkflows},
		{"emergency", applyEmergency},
	}
	for _, o := range overlays {
		ds, ok := st.Get(o.key)
		if !ok {
			continue
		}
		if err := o.apply(d, ds); err != nil {
			results.Errorf("overlay %s: %v", o.key, err)
			continue
		}
		results.Debugf("overlay %s applied from %s", o.key, ds.Path)
	}
	return d
}

// transactionLabels maps the camelCase keys of performance-results files to
// chart labels, preserving the published ordering.
var transactionLabels = []struct{ key, label string }{
	{"policyRegistration", "Policy Registration"},
	{"accessRightDelegation", "Access Right Delegation"},
	{"emergencyAccessRequest", "Emergency Access Request"},
	{"dataUpdate", "Data Update"},
}

func applyPerformance(d *Data, ds results.Dataset) error {
	var doc struct {
		EncryptionDecryption struct {
			Data []struct {
				SizeKB           float64 `json:"sizeKB"`
				EncryptionTimeMs float64 `json:"encryptionTimeMs"`
				DecryptionTimeMs float64 `json:"decryptionTimeMs"`
			} `json:"data"`
		} `json:"encryptionDecryption"`
		ZKProofOperations struct {
			Data []struct {
				Complexity       float64 `json:"complexity"`
				GenerationTimeMs float64 `json:"generationTimeMs"`
				ValidationTimeMs float64 `json:"validationTimeMs"`
			} `json:"data"`
		} `json:"zkProofOperations"`
		TransactionTimes struct {
			Data map[string]struct {
				Iterations int       `json:"iterations"`
				Times      []float64 `json:"times"`
				AverageMs  float64   `json:"averageMs"`
			} `json:"data"`
		} `json:"transactionTimes"`
		Responsiveness struct {
			Latency []struct {
				ConcurrentTxs float64 `json:"concurrentTxs"`
				AvgLatencyMs  float64 `json:"avgLatencyMs"`
			} `json:"latency"`
			Throughput []struct {
				ConcurrentTxs float64 `json:"concurrentTxs"`
				ThroughputTps float64 `json:"throughputTps"`
			} `json:"throughput"`
		} `json:"responsiveness"`
	}
	if err := ds.Decode(&doc); err != nil {
		return err
	}
	if n := len(doc.EncryptionDecryption.Data); n > 0 {
		out := make([]SizeTiming, n)
		for i, e := range doc.EncryptionDecryption.Data {
			out[i] = SizeTiming{SizeKB: e.SizeKB, EncryptMs: e.EncryptionTimeMs, DecryptMs: e.DecryptionTimeMs}
		}
		d.Performance.EncryptDecrypt = out
	}
	if n := len(doc.ZKProofOperations.Data); n > 0 {
		out := make([]ComplexityTiming, n)
		for i, e := range doc.ZKProofOperations.Data {
			out[i] = ComplexityTiming{Complexity: e.Complexity, GenerateMs: e.GenerationTimeMs, ValidateMs: e.ValidationTimeMs}
		}
		d.Performance.ZKProofOps = out
	}
	if len(doc.TransactionTimes.Data) > 0 {
		var out []TransactionTiming
		for _, tl := range transactionLabels {
			e, ok := doc.TransactionTimes.Data[tl.key]
			if !ok {
				continue
			}
			out = append(out, TransactionTiming{Name: tl.label, AvgMs: e.AverageMs, Samples: e.Times})
		}
		if len(out) > 0 {
			d.Performance.Transactions = out
		}
	}
	if len(doc.Responsiveness.Latency) > 0 && len(doc.Responsiveness.Throughput) == len(doc.Responsiveness.Latency) {
		r := Responsiveness{}
		for _, e := range doc.Responsiveness.Latency {
			r.Concurrent = append(r.Concurrent, e.ConcurrentTxs)
			r.AvgLatencyMs = append(r.AvgLatencyMs, e.AvgLatencyMs)
		}
		for _, e := range doc.Responsiveness.Throughput {
			r.ThroughputTPS = append(r.ThroughputTPS, e.ThroughputTps)
		}
		d.Performance.Responsiveness = r
	}
	return nil
}

func applySecurity(d *Data, ds results.Dataset) error {
	var doc map[string]json.RawMessage
	if err := ds.Decode(&doc); err != nil {
		return err
	}
	type catDoc struct {
		Summary struct {
			PassRate   float64 `json:"passRate"`
			TotalTests int     `json:"totalTests"`
		} `json:"summary"`
	}
	for i, cat := range d.Security.Categories {
		raw, ok := doc[cat.Key]
		if !ok {
			continue
		}
		var cd catDoc
		if err := json.Unmarshal(raw, &cd); err != nil {
			results.Warnf("security category %s: %v", cat.Key, err)
			continue
		}
		if cd.Summary.TotalTests > 0 {
			d.Security.Categories[i].PassRate = cd.Summary.PassRate
			d.Security.Categories[i].TotalTests = cd.Summary.TotalTests
		}
	}
	if raw, ok := doc["overallScore"]; ok {
		var score float64
		if err := json.Unmarshal(raw, &score); err == nil && score > 0 {
			d.Security.OverallScore = score
		}
	}
	// Prevention rates mirror the category pass rates when file-backed.
	for i, cat := range d.Security.Categories {
		if i < len(d.Security.Prevention) {
			d.Security.Prevention[i].Value = cat.PassRate
		}
	}
	return nil
}

func applyDeploymentGas(d *Data, ds results.Dataset) error {
	var doc map[string]float64
	if err := ds.Decode(&doc); err != nil {
		return err
	}
	if len(doc) == 0 {
		return nil
	}
	seen := map[string]bool{}
	for i, e := range d.Gas.Deployment {
		if v, ok := doc[e.Name]; ok {
			d.Gas.Deployment[i].Gas = v
			seen[e.Name] = true
		}
	}
	var extra []string
	for name := range doc {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		d.Gas.Deployment = append(d.Gas.Deployment, GasEntry{Name: name, Gas: doc[name]})
	}
	return nil
}

func applyOperationalGas(d *Data, ds results.Dataset) error {
	// View functions carry a "no gas cost" string; only numeric entries count.
	var doc map[string]json.RawMessage
	if err := ds.Decode(&doc); err != nil {
		return err
	}
	var entries []GasEntry
	for name, raw := range doc {
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		entries = append(entries, GasEntry{Name: name, Gas: v})
	}
	if len(entries) == 0 {
		return nil
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Gas != entries[j].Gas {
			return entries[i].Gas > entries[j].Gas
		}
		return entries[i].Name < entries[j].Name
	})
	d.Gas.Operational = entries
	return nil
}

func applyAccessFlow(d *Data, ds results.Dataset) error {
	type timing struct {
		AverageMs float64 `json:"averageMs"`
		MinMs     float64 `json:"minMs"`
		MaxMs     float64 `json:"maxMs"`
	}
	var doc struct {
		Components map[string]timing `json:"components"`
		Operations map[string]timing `json:"operations"`
	}
	if err := ds.Decode(&doc); err != nil {
		return err
	}
	componentKeys := []struct{ key, label string }{
		{"accessRequest", "Access Request"},
		{"policyVerification", "Policy Verification"},
		{"enforcement", "Enforcement"},
		{"response", "Response"},
	}
	if len(doc.Components) > 0 {
		var out []ComponentTiming
		for _, ck := range componentKeys {
			t, ok := doc.Components[ck.key]
			if !ok {
				continue
			}
			ct := ComponentTiming{Name: ck.label, AvgMs: t.AverageMs}
			if t.MinMs > 0 && t.MinMs <= t.AverageMs {
				ct.MinDelta = t.AverageMs - t.MinMs
			}
			if t.MaxMs >= t.AverageMs {
				ct.MaxDelta = t.MaxMs - t.AverageMs
			}
			out = append(out, ct)
		}
		if len(out) > 0 {
			d.AccessFlow.Components = out
		}
	}
	operationKeys := []struct{ key, label string }{
		{"registration", "Registration"},
		{"delegation", "Delegation"},
		{"verification", "Verification"},
		{"enforcement", "Enforcement"},
	}
	if len(doc.Operations) > 0 {
		var out []OpTiming
		for _, ok2 := range operationKeys {
			t, ok := doc.Operations[ok2.key]
			if !ok {
				continue
			}
			out = append(out, OpTiming{Name: ok2.label, AvgMs: t.AverageMs})
		}
		if len(out) > 0 {
			d.AccessFlow.Operations = out
		}
	}
	return nil
}

func applyLoadProfile(d *Data, ds results.Dataset) error {
	var doc struct {
		OperationLatencyVsLoad struct {
			Data []struct {
				RequestRate float64 `json:"requestRate"`
				Metrics     struct {
					AvgLatency float64 `json:"avgLatency"`
				} `json:"metrics"`
				SuccessRate float64 `json:"successRate"`
			} `json:"data"`
		} `json:"operationLatencyVsLoad"`
	}
	if err := ds.Decode(&doc); err != nil {
		return err
	}
	if len(doc.OperationLatencyVsLoad.Data) == 0 {
		return nil
	}
	lp := LoadProfile{ScaleUsers: d.Load.ScaleUsers, ScaleTPS: d.Load.ScaleTPS}
	for _, e := range doc.OperationLatencyVsLoad.Data {
		lp.Users = append(lp.Users, e.RequestRate)
		lp.AvgLatencyMs = append(lp.AvgLatencyMs, e.Metrics.AvgLatency)
		lp.SuccessRatePct = append(lp.SuccessRatePct, e.SuccessRate)
	}
	d.Load = lp
	return nil
}

func applyWorkflows(d *Data, ds results.Dataset) error {
	var doc struct {
		Workflows []struct {
			Name        string  `json:"name"`
			SuccessRate float64 `json:"successRate"`
		} `json:"workflows"`
	}
	if err := ds.Decode(&doc); err != nil {
		return err
	}
	if len(doc.Workflows) == 0 {
		return nil
	}
	out := make([]Score, len(doc.Workflows))
	for i, w := range doc.Workflows {
		out[i] = Score{Name: w.Name, Value: w.SuccessRate}
	}
	d.Workflows.SuccessRates = out
	return nil
}

func applyEmergency(d *Data, ds results.Dataset) error {
	var doc struct {
		Timeline []struct {
			Step   string  `json:"step"`
			TimeMs float64 `json:"timeMs"`
		} `json:"timeline"`
	}
	if err := ds.Decode(&doc); err != nil {
		return err
	}
	if len(doc.Timeline) == 0 {
		return nil
	}
	out := make([]StageTiming, len(doc.Timeline))
	for i, s := range doc.Timeline {
		out[i] = StageTiming{Stage: s.Step, TimeMs: s.TimeMs}
	}
	d.Workflows.EmergencyTimeline = out
	return nil
}
