// Command hashbench measures the hash table strategies over a grid of table
// sizes, load factors and hash functions, and compares saved reports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hashbench",
		Short:         "Benchmark chaining, linear probing and double hashing tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(runCommand(), compareCommand(), importCommand())
	return cmd
}
