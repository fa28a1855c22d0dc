package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reactive-demo",
		Short: "Runs worked scenarios against the reactive runtime",
		Long: `reactive-demo drives the signal/effect/scope runtime through the
scenarios its test suite also exercises, printing what ran so the
control-flow contracts (rerun-once, untracked reads, keyed reuse, context
lookup) are visible outside of go test.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		counterCmd(),
		nestedEffectCmd(),
		untrackedMemoCmd(),
		conditionalDepsCmd(),
		keyedReuseCmd(),
		contextCmd(),
		benchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
