// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"log/slog"
	"os"

	"astrograph/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	stepColor       = color.New(color.FgYellow)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	// dimColor is used for less important/secondary text in the CLI output
	dimColor = color.New(color.Faint)
)

// newRootCmd builds the command tree. The render flags are persistent, so
// every subcommand that needs a configuration resolves it the same way.
func newRootCmd() *cobra.Command {
	flags := &renderFlags{}

	rootCmd := &cobra.Command{
		Use:   "astrograph",
		Short: "Plot columns of astronomy data tables",
		Long: `Converts delimited tabular data (CSV, TSV, .xlsx) into a chart.

Settings come from command-line flags, an optional YAML file given with
--import-config, and built-in defaults, in that order of precedence. A flag
only overrides the file when it is actually passed.

Run without arguments to pick columns interactively.`,
		Example: `  astrograph --file comets.csv --x-axis Time --y-axes Dust_Temp,Ice_Temp
  astrograph --import-config plot.yaml --interactive --open
  astrograph --file comets.csv --x-axis Time --y-axes Flux --export-config plot.yaml`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flags.verbose {
				level = slog.LevelDebug
			}
			logger.Init(logger.Options{ToFile: true, ToStderr: flags.verbose, Level: level})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags)
		},
	}

	flags.register(rootCmd.PersistentFlags())
	registerCompletions(rootCmd, flags)

	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newServeCmd(flags))
	rootCmd.AddCommand(newPickCmd())
	return rootCmd
}

// RunCLI executes the command line and exits non-zero on any error.
func RunCLI() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
