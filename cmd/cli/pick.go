// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"astrograph/cmd/tui"

	"github.com/spf13/cobra"
)

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick [dir]",
		Short: "Pick columns interactively and save them as a config",
		Long: `Opens a terminal UI listing the data files in a directory (default: the
current one). Choose a file, the x column and the y columns, then set a few
options; the picker saves the configuration as YAML and renders the chart.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: dirCompletionFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			return tui.RunTUI(dir)
		},
	}
}
