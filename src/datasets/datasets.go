// Package datasets defines the canonical chart inputs for the SC-DLAC figure
// set. Every value a figure draws comes from one Data struct: the published
// measurement values are built in as defaults, and FromStore overlays any
// value the results directory can supply. Figures never parse result files
// themselves.
package datasets

// ComponentTiming is one labelled timing with asymmetric error-bar deltas
// below and above the average.
type ComponentTiming struct {
	Name     string
	AvgMs    float64
	MinDelta float64
	MaxDelta float64
}

// OpTiming is one labelled average timing.
type OpTiming struct {
	Name  string
	AvgMs float64
}

// CategorizedTiming is an OpTiming grouped under a legend category.
type CategorizedTiming struct {
	Name     string
	AvgMs    float64
	Category string
}

// AccessFlow holds the access-flow measurement breakdown.
type AccessFlow struct {
	Components []ComponentTiming
	Operations []OpTiming
}

// GasEntry is one named gas cost.
type GasEntry struct {
	Name string
	Gas  float64
}

// GasCosts holds contract deployment and per-function operational gas usage.
type GasCosts struct {
	Deployment  []GasEntry
	Operational []GasEntry
	ByOperation []GasEntry
}

// SizeTiming is one encryption/decryption sample at a payload size.
type SizeTiming struct {
	SizeKB    float64
	EncryptMs float64
	DecryptMs float64
}

// ComplexityTiming is one zk-proof sample at a complexity level.
type ComplexityTiming struct {
	Complexity float64
	GenerateMs float64
	ValidateMs float64
}

// TransactionTiming is one contract operation with its raw per-iteration
// samples; min/max of Samples drive the error bars.
type TransactionTiming struct {
	Name    string
	AvgMs   float64
	Samples []float64
}

// Responsiveness holds latency and throughput against concurrent
// transaction counts.
type Responsiveness struct {
	Concurrent    []float64
	AvgLatencyMs  []float64
	ThroughputTPS []float64
}

// ZKComponents splits the proof pipeline into sub-millisecond generation
// components and the heavier validation components.
type ZKComponents struct {
	Small []ComponentTiming
	Large []ComponentTiming
}

// RateProfile holds latency and throughput against request submission rate.
type RateProfile struct {
	Rates         []float64
	LatencyMs     []float64
	ThroughputTPS []float64
}

// Performance groups the micro-benchmark datasets.
type Performance struct {
	EncryptDecrypt []SizeTiming
	ZKProofOps     []ComplexityTiming
	ZKComponents   ZKComponents
	ZKScaling      RateProfile
	Transactions   []TransactionTiming
	Combined       []CategorizedTiming
	Responsiveness Responsiveness
	ResponseTimes  []ComponentTiming
	DataPolicyMs   float64
	PlainPolicyMs  float64
}

// Score is one labelled percentage or point score.
type Score struct {
	Name  string
	Value float64
}

// KPI is one headline metric with its display unit.
type KPI struct {
	Name  string
	Value float64
	Unit  string
}

// SecurityCategory is one security test category with its pass rate.
type SecurityCategory struct {
	Key        string
	Label      string
	PassRate   float64
	TotalTests int
}

// Security holds the security test results and derived scores.
type Security struct {
	Categories    []SecurityCategory
	Prevention    []Score
	OverallScore  float64
	ZKCoverage    []Score
	CoverageRadar []Score
	KPIs          []KPI
}

// StageTiming is one step of the emergency-access timeline.
type StageTiming struct {
	Stage  string
	TimeMs float64
}

// MultiUser holds workflow scalability against concurrent users.
type MultiUser struct {
	Users         []float64
	WorkflowSec   []float64
	ThroughputWPS []float64
}

// Workflows holds the healthcare workflow datasets.
type Workflows struct {
	SuccessRates      []Score
	EmergencyTimeline []StageTiming
	MultiUser         MultiUser
	RoleAccess        []Score
}

// LoadProfile holds system behaviour under concurrent user load.
type LoadProfile struct {
	Users          []float64
	AvgLatencyMs   []float64
	SuccessRatePct []float64
	ScaleUsers     []float64
	ScaleTPS       []float64
}

// Comparison holds SC-DLAC versus traditional access-control scores per
// metric category.
type Comparison struct {
	Categories  []string
	SCDLAC      []float64
	Traditional []float64
}

// OverviewMetric pairs raw measurements for both systems on one headline
// metric. LowerBetter marks latency-style metrics that invert when
// normalized onto a 0-100 scale for plotting.
type OverviewMetric struct {
	Name        string
	SCDLAC      float64
	Traditional float64
	Unit        string
	LowerBetter bool
}

// Overview aggregates the panels of the system overview figure.
type Overview struct {
	LatencyProfile []ComponentTiming
	SLAThresholdMs float64
	Metrics        []OverviewMetric
}

// Data aggregates every chart input for one render run.
type Data struct {
	AccessFlow  AccessFlow
	Gas         GasCosts
	Performance Performance
	Security    Security
	Workflows   Workflows
	Load        LoadProfile
	Comparison  Comparison
	Overview    Overview
}

// Defaults returns the built-in dataset values: the measurements published
// with the system evaluation. FromStore starts from these and overrides
// whatever the results directory provides.
func Defaults() *Data {
	return &Data{
		AccessFlow: AccessFlow{
			Components: []ComponentTiming{
				{Name: "Access Request", AvgMs: 47.48, MinDelta: 5.85, MaxDelta: 14.34},
				{Name: "Policy Verification", AvgMs: 29.04, MinDelta: 13.00, MaxDelta: 4.00},
				{Name: "Enforcement", AvgMs: 14.37, MinDelta: 9.29, MaxDelta: 2.46},
				{Name: "Response", AvgMs: 25.20, MinDelta: 10.59, MaxDelta: 7.09},
			},
			Operations: []OpTiming{
				{Name: "Registration", AvgMs: 49.56},
				{Name: "Delegation", AvgMs: 43.20},
				{Name: "Verification", AvgMs: 14.17},
				{Name: "Enforcement", AvgMs: 18.99},
			},
		},
		Gas: GasCosts{
			Deployment: []GasEntry{
				{Name: "ZKP_Manager", Gas: 292943},
				{Name: "DLAC_Manager", Gas: 2391738},
				{Name: "DID_Manager", Gas: 1195591},
				{Name: "AuditLogger", Gas: 813096},
				{Name: "EHR_Manager", Gas: 2405196},
			},
			Operational: []GasEntry{
				{Name: "requestDelegatedEmergencyAccess", Gas: 529692},
				{Name: "createPatientRecord", Gas: 325834},
				{Name: "updatePatientData", Gas: 257562},
				{Name: "createDID", Gas: 227129},
				{Name: "revokeDelegatedEmergencyAccess", Gas: 202191},
				{Name: "assignRole", Gas: 192274},
				{Name: "createDelegationPolicy", Gas: 191438},
				{Name: "submitProof", Gas: 114493},
				{Name: "addRole", Gas: 102054},
				{Name: "addAttribute", Gas: 63561},
				{Name: "grantPermission", Gas: 53554},
				{Name: "updateDIDRegistry", Gas: 47251},
				{Name: "revokePermission", Gas: 31745},
				{Name: "updatePolicy", Gas: 25696},
			},
			ByOperation: []GasEntry{
				{Name: "Create Patient", Gas: 258521},
				{Name: "Update Data", Gas: 189456},
				{Name: "Emergency Access", Gas: 234567},
				{Name: "Audit Log", Gas: 98123},
				{Name: "ZK Proof Submit", Gas: 183824},
				{Name: "Role Assign", Gas: 267891},
			},
		},
		Performance: Performance{
			EncryptDecrypt: []SizeTiming{
				{SizeKB: 1, EncryptMs: 0.5716, DecryptMs: 0.0781},
				{SizeKB: 2, EncryptMs: 0.0647, DecryptMs: 0.0271},
				{SizeKB: 4, EncryptMs: 0.0557, DecryptMs: 0.0343},
				{SizeKB: 8, EncryptMs: 0.0951, DecryptMs: 0.0587},
				{SizeKB: 16, EncryptMs: 0.2971, DecryptMs: 0.1176},
				{SizeKB: 32, EncryptMs: 0.1424, DecryptMs: 0.1412},
				{SizeKB: 64, EncryptMs: 0.3195, DecryptMs: 0.2208},
				{SizeKB: 128, EncryptMs: 0.4324, DecryptMs: 0.5288},
				{SizeKB: 256, EncryptMs: 0.8018, DecryptMs: 0.9169},
				{SizeKB: 512, EncryptMs: 1.5425, DecryptMs: 1.8637},
				{SizeKB: 1024, EncryptMs: 2.5469, DecryptMs: 3.7553},
			},
			ZKProofOps: []ComplexityTiming{
				{Complexity: 1, GenerateMs: 0.5391, ValidateMs: 0.0257},
				{Complexity: 2, GenerateMs: 0.0391, ValidateMs: 0.0099},
				{Complexity: 4, GenerateMs: 0.0618, ValidateMs: 0.0061},
				{Complexity: 8, GenerateMs: 0.0517, ValidateMs: 0.0206},
				{Complexity: 16, GenerateMs: 0.0523, ValidateMs: 0.0996},
				{Complexity: 32, GenerateMs: 0.0669, ValidateMs: 0.0233},
				{Complexity: 64, GenerateMs: 0.1188, ValidateMs: 0.0368},
				{Complexity: 128, GenerateMs: 0.2473, ValidateMs: 0.0610},
			},
			ZKScaling: RateProfile{
				Rates:         []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 10000},
				LatencyMs:     []float64{31.47, 12.81, 8.51, 4.40, 4.28, 3.39, 2.75, 2.15, 1.23, 1.30, 1.15, 1.19, 1.12, 1.05, 1.03},
				ThroughputTPS: []float64{31.77, 78.01, 117.42, 227.18, 233.20, 294.21, 363.15, 464.68, 829.66, 716.87, 808.14, 822.65, 897.96, 858.09, 905.92},
			},
			ZKComponents: ZKComponents{
				Small: []ComponentTiming{
					{Name: "Signing", AvgMs: 0.4048, MinDelta: 0.1863, MaxDelta: 0.8709},
					{Name: "Generation", AvgMs: 1.9000, MinDelta: 0.9203, MaxDelta: 0.9838},
					{Name: "Verification", AvgMs: 0.2467, MinDelta: 0.0939, MaxDelta: 0.1871},
				},
				Large: []ComponentTiming{
					{Name: "Validation", AvgMs: 58.7349, MinDelta: 12.2654, MaxDelta: 12.0542},
					{Name: "Cumulative", AvgMs: 61.2866, MinDelta: 12.9707, MaxDelta: 13.0999},
				},
			},
			Transactions: []TransactionTiming{
				{Name: "Policy Registration", AvgMs: 41.33, Samples: []float64{54.7244, 36.0634, 46.2801, 44.7290, 24.8560}},
				{Name: "Access Right Delegation", AvgMs: 51.61, Samples: []float64{47.7254, 83.0287, 46.7142, 40.8313, 39.7627}},
				{Name: "Emergency Access Request", AvgMs: 65.26, Samples: []float64{82.9698, 63.5752, 49.2433}},
				{Name: "Data Update", AvgMs: 59.87, Samples: []float64{62.5309, 67.5531, 55.7669, 57.4064, 56.0775}},
			},
			Combined: []CategorizedTiming{
				{Name: "Policy Registration", AvgMs: 57.10, Category: "Access Policy Operations"},
				{Name: "Access Delegation", AvgMs: 53.02, Category: "Access Policy Operations"},
				{Name: "Policy Verification", AvgMs: 12.28, Category: "Access Policy Operations"},
				{Name: "Authorization", AvgMs: 13.77, Category: "Access Policy Operations"},
				{Name: "Emergency Access", AvgMs: 65.26, Category: "Data Operations"},
				{Name: "Data Update", AvgMs: 59.87, Category: "Data Operations"},
			},
			Responsiveness: Responsiveness{
				Concurrent:    []float64{1, 2, 4, 8},
				AvgLatencyMs:  []float64{35.3027, 16.8125, 10.07078, 7.85234},
				ThroughputTPS: []float64{28.32645, 59.47955, 99.29722, 127.35061},
			},
			ResponseTimes: []ComponentTiming{
				{Name: "Data Access", AvgMs: 16.9, MinDelta: 3.2, MaxDelta: 3.2},
				{Name: "Data Update", AvgMs: 24.4, MinDelta: 4.1, MaxDelta: 4.1},
				{Name: "Emergency Access", AvgMs: 28.8, MinDelta: 5.1, MaxDelta: 5.1},
				{Name: "Audit Query", AvgMs: 12.7, MinDelta: 2.3, MaxDelta: 2.3},
				{Name: "Policy Creation", AvgMs: 35.0, MinDelta: 6.2, MaxDelta: 6.2},
				{Name: "ZK Proof", AvgMs: 22.6, MinDelta: 3.8, MaxDelta: 3.8},
			},
			DataPolicyMs:  74.38,
			PlainPolicyMs: 61.17,
		},
		Security: Security{
			Categories: []SecurityCategory{
				{Key: "unauthorizedAccess", Label: "Unauthorized Access", PassRate: 100, TotalTests: 12},
				{Key: "roleEscalation", Label: "Role Escalation", PassRate: 100, TotalTests: 8},
				{Key: "didSpoofing", Label: "DID Spoofing", PassRate: 100, TotalTests: 6},
				{Key: "cryptographicSecurity", Label: "Cryptographic Security", PassRate: 90, TotalTests: 10},
				{Key: "inputValidation", Label: "Input Validation", PassRate: 100, TotalTests: 9},
				{Key: "permissionBoundary", Label: "Permission Boundary", PassRate: 100, TotalTests: 7},
			},
			Prevention: []Score{
				{Name: "Unauthorized Access", Value: 100},
				{Name: "Role Escalation", Value: 100},
				{Name: "DID Spoofing", Value: 100},
				{Name: "Crypto Attacks", Value: 90},
				{Name: "Input Validation", Value: 100},
				{Name: "Permission Boundary", Value: 100},
			},
			OverallScore: 97.87,
			ZKCoverage: []Score{
				{Name: "Valid Proof Submission", Value: 100},
				{Name: "Role Credential Combination", Value: 100},
				{Name: "Nurse Proof Validation", Value: 100},
				{Name: "Multiple Submissions", Value: 100},
				{Name: "Hash Consistency", Value: 100},
				{Name: "Replay Prevention", Value: 100},
			},
			CoverageRadar: []Score{
				{Name: "Access Control", Value: 100},
				{Name: "Crypto Security", Value: 90},
				{Name: "Audit Integrity", Value: 100},
				{Name: "Emergency Response", Value: 100},
				{Name: "Data Privacy", Value: 100},
				{Name: "System Resilience", Value: 100},
			},
			KPIs: []KPI{
				{Name: "Average Latency", Value: 18.02, Unit: "ms"},
				{Name: "Security Score", Value: 97.87, Unit: "%"},
				{Name: "Fault Tolerance", Value: 100, Unit: "%"},
				{Name: "Emergency Access", Value: 100, Unit: "%"},
				{Name: "Audit Coverage", Value: 100, Unit: "%"},
			},
		},
		Workflows: Workflows{
			SuccessRates: []Score{
				{Name: "Patient Admission", Value: 100},
				{Name: "Emergency Response", Value: 100},
				{Name: "Multi-Specialist Consult", Value: 87.5},
				{Name: "Medication Dispensing", Value: 100},
				{Name: "Audit Compliance", Value: 100},
				{Name: "Data Portability", Value: 100},
			},
			EmergencyTimeline: []StageTiming{
				{Stage: "Request", TimeMs: 45},
				{Stage: "Auth", TimeMs: 32},
				{Stage: "ZK Verify", TimeMs: 89},
				{Stage: "Access", TimeMs: 23},
				{Stage: "Audit", TimeMs: 15},
			},
			MultiUser: MultiUser{
				Users:         []float64{1, 2, 5, 10, 15, 20},
				WorkflowSec:   []float64{1.2, 1.4, 1.8, 2.3, 3.1, 4.6},
				ThroughputWPS: []float64{0.83, 1.43, 2.78, 4.35, 4.84, 4.35},
			},
			RoleAccess: []Score{
				{Name: "Doctor", Value: 324},
				{Name: "Nurse", Value: 567},
				{Name: "Specialist", Value: 123},
				{Name: "Pharmacist", Value: 89},
				{Name: "Paramedic", Value: 45},
				{Name: "Auditor", Value: 234},
			},
		},
		Load: LoadProfile{
			Users:          []float64{1, 5, 10, 20, 50, 100},
			AvgLatencyMs:   []float64{13.6, 16.9, 21.7, 33.2, 60.8, 90.6},
			SuccessRatePct: []float64{100, 100, 100, 95.2, 87.3, 80.8},
			ScaleUsers:     []float64{1, 10, 50, 100},
			ScaleTPS:       []float64{0.98, 9.2, 41.3, 72.6},
		},
		Comparison: Comparison{
			Categories:  []string{"Response Time", "Security Score", "Availability", "Scalability", "Audit Integrity", "Emergency Access"},
			SCDLAC:      []float64{82, 97.87, 99.9, 87, 100, 98},
			Traditional: []float64{45, 65, 95, 60, 70, 30},
		},
		Overview: Overview{
			LatencyProfile: []ComponentTiming{
				{Name: "Read", AvgMs: 16.9, MinDelta: 3.2, MaxDelta: 3.2},
				{Name: "Write", AvgMs: 24.4, MinDelta: 4.1, MaxDelta: 4.1},
				{Name: "Emergency", AvgMs: 28.8, MinDelta: 5.1, MaxDelta: 5.1},
				{Name: "Audit", AvgMs: 12.7, MinDelta: 2.3, MaxDelta: 2.3},
				{Name: "ZK Proof", AvgMs: 22.6, MinDelta: 3.8, MaxDelta: 3.8},
			},
			SLAThresholdMs: 100,
			Metrics: []OverviewMetric{
				{Name: "Latency", SCDLAC: 18.02, Traditional: 625, Unit: "ms", LowerBetter: true},
				{Name: "Security Score", SCDLAC: 97.87, Traditional: 65, Unit: "%"},
				{Name: "Availability", SCDLAC: 99.9, Traditional: 95, Unit: "%"},
				{Name: "Emergency Access", SCDLAC: 153, Traditional: 15000, Unit: "ms", LowerBetter: true},
				{Name: "Audit Coverage", SCDLAC: 100, Traditional: 70, Unit: "%"},
			},
		},
	}
}
