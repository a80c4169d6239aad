package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theflywheel/hashkv/internal/benchreport"
)

func runCommand() *cobra.Command {
	var (
		configPath string
		outPath    string
		commitID   string
		logFile    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Measure every configuration of the benchmark matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadBenchConfig(configPath)
			if err != nil {
				return err
			}
			if logFile != "" {
				cfg.Log.Filename = logFile
			}

			logger, err := cfg.Log.Build()
			if err != nil {
				return err
			}
			defer logger.Sync()

			logger.Info("starting benchmark matrix",
				zap.Ints("sizes", cfg.Matrix.Sizes),
				zap.Float64s("load_factors", cfg.Matrix.LoadFactors),
				zap.Strings("strategies", cfg.Matrix.Strategies),
				zap.Strings("hash_funcs", cfg.Matrix.HashFuncs),
				zap.Int64("seed", cfg.Matrix.Seed))

			summary, err := benchreport.Run(cfg.Matrix, logger)
			if err != nil {
				return err
			}
			summary.CommitID = commitID

			if err := benchreport.WriteFile(outPath, summary); err != nil {
				return err
			}
			logger.Info("report written",
				zap.String("path", outPath),
				zap.Int("results", len(summary.Results)))
			fmt.Fprintf(cmd.OutOrStdout(), "%d results written to %s\n", len(summary.Results), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with [matrix] and [log] sections")
	cmd.Flags().StringVarP(&outPath, "out", "o", "hashbench.json", "report output path")
	cmd.Flags().StringVar(&commitID, "commit", "unknown", "commit id recorded in the report")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	return cmd
}
