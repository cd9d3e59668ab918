// Package cmd implements the calc CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Demonstration driver for the calculator library",
	Long: `calc is a thin demonstration wrapper around the calculator
library. The library itself is the product: a small set of pure
arithmetic and number-theory functions with documented input/output
contracts. Run "calc demo" to see every function invoked once.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
