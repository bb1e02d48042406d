// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"strings"

	"astrograph/internal/discovery"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List data files and their columns",
		Long: `Scans a directory (default: the current one) and up to two levels below it
for data files, and prints each file's detected delimiter and header columns.`,
		Example:           "  astrograph list\n  astrograph list ~/data/comets",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: dirCompletionFunc,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			root, err := discovery.DataDirectory(dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			statusColor.Fprintf(out, "Scanning %s...\n", root)

			s := newSpinner(" Reading headers...")
			s.Start()
			files, scanErrors := discovery.CollectDataFiles(root)
			s.Stop()

			for _, err := range scanErrors {
				errorColor.Fprintf(cmd.ErrOrStderr(), "Error during discovery: %v\n", err)
			}
			if len(files) == 0 {
				fmt.Fprintln(out, "\nNo data files found.")
				if len(scanErrors) > 0 {
					return fmt.Errorf("%d file(s) could not be read", len(scanErrors))
				}
				return nil
			}

			fmt.Fprintln(out, "\nDiscovered data files:")
			for _, f := range files {
				fmt.Fprintf(out, "- %s %s\n", f.Name, dimColor.Sprint(describeDelimiter(f.Delimiter)))
				fmt.Fprintf(out, "    %s\n", identifierColor.Sprint(strings.Join(f.Columns, ", ")))
			}
			return nil
		},
	}
}

func describeDelimiter(d string) string {
	switch d {
	case "":
		return "(spreadsheet)"
	case "\t":
		return "(tab-separated)"
	default:
		return fmt.Sprintf("(%q-separated)", d)
	}
}
