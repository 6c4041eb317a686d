// fieldcheck evaluates values against the built-in field rulesets from the
// command line.
//
// Usage:
//
//	fieldcheck eval -t email jane@gmial.com
//	fieldcheck eval -t password a Ab Abcdefg1 --show-all
//	fieldcheck rules -t card
//	fieldcheck schema
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "fieldcheck",
		Short: "Validate field values and show feedback",
		Long: `fieldcheck runs the field validation engine against values typed on the
command line and prints the outcomes, message, checklist and suggestions a
form would show.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "Output format: table, json")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Load FIELDVALIDATION_* settings from a .env file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log rule faults to stderr")

	rootCmd.AddCommand(evalCmd(opts))
	rootCmd.AddCommand(rulesCmd(opts))
	rootCmd.AddCommand(schemaCmd(opts))

	return rootCmd
}
