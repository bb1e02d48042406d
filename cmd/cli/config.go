// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"

	"astrograph/internal/config"
	"astrograph/internal/plotspec"

	"github.com/spf13/cobra"
)

// newConfigCmd is the parent command for configuration subcommands.
func newConfigCmd(flags *renderFlags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and check plot configurations",
		Long: `Provides subcommands to inspect the configuration a render would use.
The same flags as the main command apply, with the same precedence.`,
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as YAML",
		Example: `  astrograph config show --import-config plot.yaml --dpi 150
  astrograph config show -f comets.csv -x Time -y Flux > plot.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	configValidateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a YAML configuration against its data file",
		Long: `Loads the configuration file, applies any flags given, and builds the plot
without rendering it. Reports the first problem found: unreadable YAML, an
invalid value, or a column missing from the data.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: yamlFileCompletionFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			layer, err := flags.layer(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := config.Resolve(layer, args[0])
			if err != nil {
				return err
			}
			spec, err := plotspec.Load(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			successColor.Fprintf(out, "%s is valid\n", args[0])
			for _, s := range spec.Series {
				errorBars := ""
				if s.HasErrorBars() {
					errorBars = dimColor.Sprint(" with error bars")
				}
				fmt.Fprintf(out, "  %s: %d points%s\n", identifierColor.Sprint(s.Name), len(s.X), errorBars)
			}
			dimColor.Fprintf(out, "  output: %s\n", spec.Layout.OutputFile)
			return nil
		},
	}

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	return configCmd
}
