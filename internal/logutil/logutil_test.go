package logutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogConfigBuild(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LogConfig
		wantErr bool
	}{
		{name: "default", cfg: DefaultLogConfig()},
		{name: "json", cfg: LogConfig{Level: "debug", Format: "json"}},
		{name: "empty", cfg: LogConfig{}},
		{name: "bad level", cfg: LogConfig{Level: "loud"}, wantErr: true},
		{name: "bad format", cfg: LogConfig{Format: "xml"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := tt.cfg.Build()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestLogConfigFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashbench.log")
	cfg := LogConfig{Level: "info", Format: "json", Filename: path, MaxSize: 1}

	logger, err := cfg.Build()
	require.NoError(t, err)
	logger.Info("written to file")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "written to file")
}
