package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theflywheel/hashkv/internal/benchreport"
)

func compareCommand() *cobra.Command {
	var (
		outPath   string
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "compare <base.json> <current.json>",
		Short: "Compare two reports and fail on significant regressions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := benchreport.ReadSummary(args[0])
			if err != nil {
				return err
			}
			current, err := benchreport.ReadSummary(args[1])
			if err != nil {
				return err
			}

			summary := benchreport.Compare(base, current, threshold)
			benchreport.PrintComparison(cmd.OutOrStdout(), summary)

			if outPath != "" {
				if err := benchreport.WriteFile(outPath, summary); err != nil {
					return err
				}
			}

			if summary.RegressionBenchmarks > 0 {
				return fmt.Errorf("%d significant performance regressions detected", summary.RegressionBenchmarks)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "also write the comparison as JSON")
	cmd.Flags().Float64Var(&threshold, "threshold", benchreport.SignificanceThreshold, "percent change treated as significant")
	return cmd
}
