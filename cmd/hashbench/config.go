package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/theflywheel/hashkv/internal/benchreport"
	"github.com/theflywheel/hashkv/internal/logutil"
)

// BenchConfig is the TOML layout accepted by `hashbench run --config`.
type BenchConfig struct {
	Matrix benchreport.Matrix `toml:"matrix"`
	Log    logutil.LogConfig  `toml:"log"`
}

func defaultBenchConfig() BenchConfig {
	return BenchConfig{
		Matrix: benchreport.DefaultMatrix(),
		Log:    logutil.DefaultLogConfig(),
	}
}

// loadBenchConfig decodes path over the defaults. An empty path returns the
// defaults unchanged.
func loadBenchConfig(path string) (BenchConfig, error) {
	cfg := defaultBenchConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return BenchConfig{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return cfg, nil
}
