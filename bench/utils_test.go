package bench_test

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/theflywheel/hashkv"
	"github.com/theflywheel/hashkv/internal/benchreport"
	"github.com/theflywheel/hashkv/internal/workload"
)

// getMemoryStats returns the current memory stats as a map
func getMemoryStats() map[string]float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return map[string]float64{
		"alloc_mb": float64(m.Alloc) / (1024 * 1024),
		"sys_mb":   float64(m.Sys) / (1024 * 1024),
	}
}

// newTable builds an empty table of the given strategy and hash function.
func newTable(b *testing.B, strategy, hash string, capacity int) hashkv.Table[string] {
	b.Helper()
	cfg := hashkv.DefaultConfig()
	cfg.Capacity = capacity
	cfg.HashFunc = hash
	table, err := hashkv.New[string](strategy, cfg)
	if err != nil {
		b.Fatalf("Failed to create %s table: %v", strategy, err)
	}
	return table
}

// collisionCount reads the collision counter of either table kind.
func collisionCount(table hashkv.Table[string]) int {
	switch t := table.(type) {
	case *hashkv.Chaining[string]:
		return t.CollisionStats().Collisions
	case *hashkv.OpenAddressing[string]:
		return t.CollisionStats().Collisions
	}
	return 0
}

// fillAndVerify inserts pairs, then looks every key up again, recording
// rates into metrics.
func fillAndVerify(b *testing.B, table hashkv.Table[string], pairs []workload.Pair, metrics map[string]float64) {
	b.Helper()

	runtime.GC()
	b.StartTimer()
	writeStart := time.Now()
	for _, p := range pairs {
		table.Insert(p.Key, p.Value)
	}
	b.StopTimer()
	writeTime := time.Since(writeStart)

	b.StartTimer()
	readStart := time.Now()
	for i, p := range pairs {
		got, found := table.Search(p.Key)
		if !found {
			b.Fatalf("Key %d (%q) not found", i, p.Key)
		}
		if got != p.Value {
			b.Fatalf("Value mismatch for key %q: expected %q, got %q", p.Key, p.Value, got)
		}
	}
	b.StopTimer()
	readTime := time.Since(readStart)

	n := float64(len(pairs))
	metrics[benchreport.MetricInsertOpsPerSec] = n / writeTime.Seconds()
	metrics[benchreport.MetricInsertNsPerOp] = float64(writeTime.Nanoseconds()) / n
	metrics[benchreport.MetricSearchOpsPerSec] = n / readTime.Seconds()
	metrics[benchreport.MetricSearchNsPerOp] = float64(readTime.Nanoseconds()) / n
	metrics[benchreport.MetricCollisions] = float64(collisionCount(table))
	metrics[benchreport.MetricLoadFactor] = table.LoadFactor()
	metrics[benchreport.MetricCapacity] = float64(table.Capacity())
	metrics["alloc_mb"] = getMemoryStats()["alloc_mb"]

	b.Logf("%d keys: insert %v (%.0f keys/sec), lookup %v (%.0f keys/sec), capacity %d",
		len(pairs), writeTime, metrics[benchreport.MetricInsertOpsPerSec],
		readTime, metrics[benchreport.MetricSearchOpsPerSec], table.Capacity())
}

// gitInfo reads the current commit and branch straight from .git, falling
// back to "local" and "dev".
func gitInfo(repoRoot string) (commitID, branch string) {
	commitID, branch = "local", "dev"

	head, err := os.ReadFile(filepath.Join(repoRoot, ".git", "HEAD"))
	if err != nil {
		return commitID, branch
	}
	content := strings.TrimSpace(string(head))
	if !strings.HasPrefix(content, "ref: ") {
		return content, branch
	}

	ref := strings.TrimPrefix(content, "ref: ")
	branch = strings.TrimPrefix(ref, "refs/heads/")
	if data, err := os.ReadFile(filepath.Join(repoRoot, ".git", ref)); err == nil {
		commitID = strings.TrimSpace(string(data))
		if len(commitID) >= 8 {
			commitID = commitID[:8]
		}
	}
	return commitID, branch
}

// saveBenchmarkResult appends result to benchmark_history/<resultsFile> in
// the repository root, creating the report when it does not exist yet.
func saveBenchmarkResult(result benchreport.Result, resultsFile string) error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	repoRoot := filepath.Dir(currentDir)

	benchmarkDir := filepath.Join(repoRoot, "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	commitID, branch := gitInfo(repoRoot)
	summary := benchreport.Summary{
		Timestamp: benchreport.CreateTimestamp(),
		CommitID:  commitID + "@" + branch,
		GoVersion: runtime.Version(),
	}

	path := filepath.Join(benchmarkDir, resultsFile)
	if existing, err := benchreport.ReadSummary(path); err == nil {
		summary.Results = existing.Results
	}
	summary.Results = append(summary.Results, result)

	if err := benchreport.WriteFile(path, summary); err != nil {
		return err
	}
	fmt.Printf("Benchmark results saved to: %s\n", path)
	return nil
}
