package benchreport

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

// CategoryMicro marks results parsed from `go test -bench` output.
const CategoryMicro = "micro"

var (
	benchLineRegex = regexp.MustCompile(`^Benchmark(\S+?)(?:-\d+)?\s+(\d+)\s+(\d+(?:\.\d+)?)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`)
	goVersionRegex = regexp.MustCompile(`go\d+\.\d+(?:\.\d+)?`)
)

// ParseGoBench converts the standard output of `go test -bench` into a
// Summary. A benchmark named Insert/linear/djb2 yields the metrics
// insert_ns_per_op and insert_ops_per_sec with strategy linear and hash djb2.
func ParseGoBench(r io.Reader) (Summary, error) {
	summary := Summary{
		Timestamp: CreateTimestamp(),
		GoVersion: runtime.Version(),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "goversion:") {
			if v := goVersionRegex.FindString(line); v != "" {
				summary.GoVersion = v
			}
			continue
		}

		matches := benchLineRegex.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		result, err := parseBenchLine(matches)
		if err != nil {
			return Summary{}, fmt.Errorf("failed to parse %q: %w", line, err)
		}
		summary.Results = append(summary.Results, result)
	}
	if err := scanner.Err(); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

func parseBenchLine(matches []string) (Result, error) {
	name := matches[1]
	ops, err := strconv.Atoi(matches[2])
	if err != nil {
		return Result{}, err
	}
	nsPerOp, err := strconv.ParseFloat(matches[3], 64)
	if err != nil {
		return Result{}, err
	}

	parts := strings.Split(name, "/")
	op := strings.ToLower(parts[0])
	result := Result{
		Name:     name,
		Category: CategoryMicro,
		Elements: ops,
		Metrics: map[string]float64{
			op + "_ns_per_op": nsPerOp,
		},
	}
	if nsPerOp > 0 {
		result.Metrics[op+"_ops_per_sec"] = 1e9 / nsPerOp
	}
	if len(parts) > 1 {
		result.Strategy = parts[1]
	}
	if len(parts) > 2 {
		result.Hash = parts[2]
	}

	if matches[4] != "" {
		bytesPerOp, err := strconv.Atoi(matches[4])
		if err != nil {
			return Result{}, err
		}
		result.Metrics["bytes_per_op"] = float64(bytesPerOp)
	}
	if matches[5] != "" {
		allocsPerOp, err := strconv.Atoi(matches[5])
		if err != nil {
			return Result{}, err
		}
		result.Metrics["allocs_per_op"] = float64(allocsPerOp)
	}
	return result, nil
}
