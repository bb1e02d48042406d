// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"strings"

	"astrograph/internal/config"
	"astrograph/internal/discovery"
	"astrograph/internal/render"
	"astrograph/internal/theme"

	"github.com/spf13/cobra"
)

func registerCompletions(rootCmd *cobra.Command, flags *renderFlags) {
	columns := func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return columnCompletions(cmd, flags, toComplete)
	}
	for _, name := range []string{"x-axis", "y-axes"} {
		_ = rootCmd.RegisterFlagCompletionFunc(name, columns)
	}

	_ = rootCmd.RegisterFlagCompletionFunc("style", cobra.FixedCompletions(theme.Names(), cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("output-format", cobra.FixedCompletions(render.StaticFormats, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("file", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		exts := make([]string, len(discovery.Extensions))
		for i, ext := range discovery.Extensions {
			exts[i] = strings.TrimPrefix(ext, ".")
		}
		return exts, cobra.ShellCompDirectiveFilterFileExt
	})
	_ = rootCmd.RegisterFlagCompletionFunc("import-config", yamlFileCompletionFunc)
}

// columnCompletions suggests header columns of the data file named by
// --file, or by the file key of --import-config. An unknown delimiter is
// detected. List flags complete the item after the last comma.
func columnCompletions(cmd *cobra.Command, flags *renderFlags, toComplete string) ([]string, cobra.ShellCompDirective) {
	path, delimiter := flags.file, flags.delimiter
	if flags.importConfig != "" && (path == "" || delimiter == "") {
		// Ignore errors during completion; there is simply nothing to suggest.
		if layer, err := config.LoadFile(flags.importConfig); err == nil {
			if path == "" {
				path = layer.File.Value()
			}
			if delimiter == "" {
				delimiter = layer.Delimiter.Value()
			}
		}
	}
	if path == "" {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	resolved, err := config.ResolvePath(path)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cols, err := discovery.Columns(resolved, config.NormalizeDelimiter(delimiter))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	var suggestions []string
	for _, c := range cols {
		candidate := prefix + c
		if strings.HasPrefix(candidate, toComplete) {
			suggestions = append(suggestions, candidate)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func yamlFileCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}

func dirCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}
