package benchreport

import (
	"fmt"
	"os"

	"github.com/sugawarayuuta/sonnet"
)

// WriteFile writes v as indented JSON to path.
func WriteFile(path string, v any) error {
	data, err := sonnet.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadSummary loads a Summary written by WriteFile.
func ReadSummary(path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var s Summary
	if err := sonnet.Unmarshal(data, &s); err != nil {
		return Summary{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}
