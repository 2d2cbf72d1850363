package datasets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zccadle/SC-DLAC/src/results"
)

func storeWith(t *testing.T, files map[string]string) results.Store {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	st, err := results.LoadStore(dir)
	if err != nil {
		t.Fatalf("LoadStore: %v", err)
	}
	return st
}

func TestDefaults_Complete(t *testing.T) {
	d := Defaults()
	if len(d.AccessFlow.Components) != 4 {
		t.Fatalf("access flow components=%d, want 4", len(d.AccessFlow.Components))
	}
	if len(d.Gas.Operational) != 14 {
		t.Fatalf("operational gas entries=%d, want 14", len(d.Gas.Operational))
	}
	if len(d.Performance.EncryptDecrypt) != 11 {
		t.Fatalf("encrypt/decrypt samples=%d, want 11", len(d.Performance.EncryptDecrypt))
	}
	if d.Security.OverallScore != 97.87 {
		t.Fatalf("overall score=%v, want 97.87", d.Security.OverallScore)
	}
	if got, want := len(d.Load.Users), len(d.Load.AvgLatencyMs); got != want {
		t.Fatalf("load users=%d latencies=%d, want equal", got, want)
	}
	if got, want := len(d.Comparison.SCDLAC), len(d.Comparison.Categories); got != want {
		t.Fatalf("comparison scores=%d categories=%d, want equal", got, want)
	}
}

func TestFromStore_EmptyStoreKeepsDefaults(t *testing.T) {
	d := FromStore(results.Store{})
	def := Defaults()
	if d.Security.OverallScore != def.Security.OverallScore {
		t.Fatal("empty store changed security defaults")
	}
	if len(d.Performance.Transactions) != len(def.Performance.Transactions) {
		t.Fatal("empty store changed transaction defaults")
	}
}

func TestFromStore_PerformanceOverride(t *testing.T) {
	st := storeWith(t, map[string]string{
		"performance-results-20240215.json": `{
			"encryptionDecryption": {"data": [
				{"sizeKB": 1, "encryptionTimeMs": 0.9, "decryptionTimeMs": 0.1},
				{"sizeKB": 2, "encryptionTimeMs": 0.2, "decryptionTimeMs": 0.05}
			]},
			"transactionTimes": {"data": {
				"policyRegistration": {"iterations": 2, "times": [40.0, 44.0], "averageMs": 42.0}
			}}
		}`,
	})
	d := FromStore(st)
	if len(d.Performance.EncryptDecrypt) != 2 {
		t.Fatalf("encrypt samples=%d, want 2", len(d.Performance.EncryptDecrypt))
	}
	if d.Performance.EncryptDecrypt[0].EncryptMs != 0.9 {
		t.Fatalf("encrypt[0]=%v, want 0.9", d.Performance.EncryptDecrypt[0].EncryptMs)
	}
	if len(d.Performance.Transactions) != 1 || d.Performance.Transactions[0].AvgMs != 42.0 {
		t.Fatalf("transactions=%v, want single Policy Registration at 42.0", d.Performance.Transactions)
	}
	// Sections the file omits stay at defaults.
	if len(d.Performance.ZKProofOps) != 8 {
		t.Fatalf("zk proof ops=%d, want default 8", len(d.Performance.ZKProofOps))
	}
}

func TestFromStore_SecurityOverride(t *testing.T) {
	st := storeWith(t, map[string]string{
		"security-tests-20240215.json": `{
			"overallScore": 95.5,
			"cryptographicSecurity": {"summary": {"passRate": 80, "totalTests": 20}}
		}`,
	})
	d := FromStore(st)
	if d.Security.OverallScore != 95.5 {
		t.Fatalf("overall score=%v, want 95.5", d.Security.OverallScore)
	}
	var crypto *SecurityCategory
	for i := range d.Security.Categories {
		if d.Security.Categories[i].Key == "cryptographicSecurity" {
			crypto = &d.Security.Categories[i]
		}
	}
	if crypto == nil || crypto.PassRate != 80 || crypto.TotalTests != 20 {
		t.Fatalf("crypto category=%+v, want pass 80 over 20 tests", crypto)
	}
}

func TestFromStore_OperationalGasSkipsNonNumeric(t *testing.T) {
	st := storeWith(t, map[string]string{
		"operational-gas-costs-20240215.json": `{
			"submitProof": 114493,
			"updatePolicy": 25696,
			"getPatientData": "no gas cost (view function)"
		}`,
	})
	d := FromStore(st)
	if len(d.Gas.Operational) != 2 {
		t.Fatalf("operational entries=%d, want 2", len(d.Gas.Operational))
	}
	if d.Gas.Operational[0].Name != "submitProof" {
		t.Fatalf("entries not sorted by gas desc: %v", d.Gas.Operational)
	}
}

func TestFromStore_WrongShapeKeepsDefaults(t *testing.T) {
	// Valid JSON whose shape matches nothing the overlay reads.
	st := storeWith(t, map[string]string{
		"healthcare-workflows-20240215.json": `{"unexpected": [1, 2, 3]}`,
	})
	d := FromStore(st)
	if len(d.Workflows.SuccessRates) != 6 {
		t.Fatalf("success rates=%d, want default 6", len(d.Workflows.SuccessRates))
	}
}
