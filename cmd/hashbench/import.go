package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theflywheel/hashkv/internal/benchreport"
)

func importCommand() *cobra.Command {
	var (
		outPath  string
		commitID string
	)

	cmd := &cobra.Command{
		Use:   "import <bench-output.txt>",
		Short: "Convert `go test -bench` output into a comparable report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			summary, err := benchreport.ParseGoBench(f)
			if err != nil {
				return err
			}
			if len(summary.Results) == 0 {
				return fmt.Errorf("no benchmark results found in %s", args[0])
			}
			summary.CommitID = commitID

			if err := benchreport.WriteFile(outPath, summary); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d results written to %s\n", len(summary.Results), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "hashbench.json", "report output path")
	cmd.Flags().StringVar(&commitID, "commit", "unknown", "commit id recorded in the report")
	return cmd
}
