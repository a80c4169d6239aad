// Package benchreport measures hash table strategies over a grid of sizes,
// load factors and hash functions, and compares two such reports.
package benchreport

import "time"

// Result categories.
const (
	CategoryMatrix = "matrix"
	CategoryHash   = "hash_collisions"
)

// Metric names recorded in Result.Metrics.
const (
	MetricInsertNsPerOp   = "insert_ns_per_op"
	MetricSearchNsPerOp   = "search_ns_per_op"
	MetricInsertOpsPerSec = "insert_ops_per_sec"
	MetricSearchOpsPerSec = "search_ops_per_sec"
	MetricCollisions      = "collisions"
	MetricLoadFactor      = "load_factor"
	MetricCapacity        = "capacity"
)

// Result is the measurement of one table configuration.
type Result struct {
	Name       string             `json:"name"`
	Category   string             `json:"category"`
	Strategy   string             `json:"strategy"`
	Hash       string             `json:"hash"`
	Size       int                `json:"size"`
	TargetLoad float64            `json:"target_load"`
	Elements   int                `json:"elements"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Summary is a complete benchmark report.
type Summary struct {
	Timestamp string   `json:"timestamp"`
	CommitID  string   `json:"commit_id"`
	GoVersion string   `json:"go_version"`
	Seed      int64    `json:"seed"`
	Results   []Result `json:"results"`
}

// CreateTimestamp returns a formatted timestamp for report files.
func CreateTimestamp() string {
	return time.Now().Format(time.RFC3339)
}

// MetricComparison compares one metric between two reports.
type MetricComparison struct {
	Name          string  `json:"name"`
	BaseValue     float64 `json:"base_value"`
	CurrentValue  float64 `json:"current_value"`
	PercentChange float64 `json:"percent_change"`
	IsRegression  bool    `json:"is_regression"`
	IsImprovement bool    `json:"is_improvement"`
	IsSignificant bool    `json:"is_significant"`
}

// BenchmarkComparison compares every shared metric of one result.
type BenchmarkComparison struct {
	Name              string             `json:"name"`
	Category          string             `json:"category"`
	MetricComparisons []MetricComparison `json:"metric_comparisons"`
	OverallAssessment string             `json:"overall_assessment"`
	HasRegressions    bool               `json:"has_regressions"`
	Score             float64            `json:"score"`
}

// ComparisonSummary is the outcome of Compare.
type ComparisonSummary struct {
	BaseCommit           string                `json:"base_commit"`
	CurrentCommit        string                `json:"current_commit"`
	TotalBenchmarks      int                   `json:"total_benchmarks"`
	ImprovedBenchmarks   int                   `json:"improved_benchmarks"`
	RegressionBenchmarks int                   `json:"regression_benchmarks"`
	BenchmarkComparisons []BenchmarkComparison `json:"benchmark_comparisons"`
}
