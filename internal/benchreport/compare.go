package benchreport

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// SignificanceThreshold is the percent change at which a metric change is
// treated as significant.
const SignificanceThreshold = 5.0

// Compare matches results by name and compares every metric present in both
// reports. Results missing from base are skipped.
func Compare(base, current Summary, threshold float64) ComparisonSummary {
	baseResults := make(map[string]Result, len(base.Results))
	for _, r := range base.Results {
		baseResults[r.Name] = r
	}

	summary := ComparisonSummary{
		BaseCommit:    base.CommitID,
		CurrentCommit: current.CommitID,
	}

	for _, cur := range current.Results {
		old, found := baseResults[cur.Name]
		if !found {
			continue
		}

		bc := BenchmarkComparison{Name: cur.Name, Category: cur.Category}
		score := 0.0
		total := 0

		for _, name := range sortedMetricNames(cur.Metrics) {
			if informationalMetric(name) {
				continue
			}
			baseValue, found := old.Metrics[name]
			if !found {
				continue
			}
			mc := compareMetric(name, baseValue, cur.Metrics[name], threshold)

			if mc.IsRegression && mc.IsSignificant {
				bc.HasRegressions = true
			}
			if mc.IsImprovement {
				score += abs(mc.PercentChange)
			} else if mc.IsRegression {
				score -= abs(mc.PercentChange)
			}
			total++
			bc.MetricComparisons = append(bc.MetricComparisons, mc)
		}

		if total > 0 {
			bc.Score = score / float64(total)
		}

		switch {
		case bc.HasRegressions:
			bc.OverallAssessment = "REGRESSION"
			summary.RegressionBenchmarks++
		case bc.Score > 0:
			bc.OverallAssessment = "IMPROVEMENT"
			summary.ImprovedBenchmarks++
		default:
			bc.OverallAssessment = "NEUTRAL"
		}

		summary.BenchmarkComparisons = append(summary.BenchmarkComparisons, bc)
	}

	// worst regressions first
	sort.SliceStable(summary.BenchmarkComparisons, func(i, j int) bool {
		a, b := summary.BenchmarkComparisons[i], summary.BenchmarkComparisons[j]
		if a.HasRegressions != b.HasRegressions {
			return a.HasRegressions
		}
		return a.Score < b.Score
	})
	summary.TotalBenchmarks = len(summary.BenchmarkComparisons)
	return summary
}

func compareMetric(name string, baseValue, currentValue, threshold float64) MetricComparison {
	percentChange := 0.0
	if baseValue != 0 {
		percentChange = ((currentValue - baseValue) / baseValue) * 100
	}

	mc := MetricComparison{
		Name:          name,
		BaseValue:     baseValue,
		CurrentValue:  currentValue,
		PercentChange: percentChange,
		IsSignificant: abs(percentChange) >= threshold,
	}
	if isHigherBetterMetric(name) {
		mc.IsRegression = percentChange < 0
		mc.IsImprovement = percentChange > 0
	} else {
		mc.IsRegression = percentChange > 0
		mc.IsImprovement = percentChange < 0
	}
	return mc
}

// PrintComparison writes a human-readable report to w.
func PrintComparison(w io.Writer, summary ComparisonSummary) {
	fmt.Fprintf(w, "Benchmark Comparison: %s vs %s\n\n",
		truncateString(summary.BaseCommit, 8),
		truncateString(summary.CurrentCommit, 8))

	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "- Total benchmarks compared: %d\n", summary.TotalBenchmarks)
	fmt.Fprintf(w, "- Improvements: %d\n", summary.ImprovedBenchmarks)
	fmt.Fprintf(w, "- Regressions: %d\n\n", summary.RegressionBenchmarks)

	if summary.TotalBenchmarks == 0 {
		fmt.Fprintln(w, "No matching benchmarks found for comparison")
		return
	}

	for _, comp := range summary.BenchmarkComparisons {
		fmt.Fprintf(w, "%-11s %s (%s)\n", comp.OverallAssessment, comp.Name, comp.Category)

		metrics := append([]MetricComparison(nil), comp.MetricComparisons...)
		sort.Slice(metrics, func(i, j int) bool {
			return abs(metrics[i].PercentChange) > abs(metrics[j].PercentChange)
		})

		for _, m := range metrics {
			if m.PercentChange == 0 {
				continue
			}
			marker := " "
			if m.IsRegression && m.IsSignificant {
				marker = "-"
			} else if m.IsImprovement && m.IsSignificant {
				marker = "+"
			}
			fmt.Fprintf(w, "  %s %-20s: %+8.2f%% (%g -> %g)\n",
				marker, m.Name, m.PercentChange, m.BaseValue, m.CurrentValue)
		}
	}
}

func sortedMetricNames(metrics map[string]float64) []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// informationalMetric reports metrics that describe a run rather than rank it.
func informationalMetric(name string) bool {
	return name == MetricLoadFactor || name == MetricCapacity
}

// isHigherBetterMetric reports whether a larger value of the metric is better.
func isHigherBetterMetric(name string) bool {
	return strings.HasSuffix(name, "_ops_per_sec")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
