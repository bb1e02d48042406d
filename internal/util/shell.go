// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package util

import "strings"

// shellSafe lists the characters that never need quoting in a POSIX shell word.
const shellSafe = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-.,/:=+@%"

// QuoteArgForShell quotes an argument for safe use in a POSIX shell command.
// It uses single quotes and escapes any internal single quotes. Arguments made
// only of safe characters are returned as is, and a leading "~/" is left
// unquoted so the shell still expands it.
func QuoteArgForShell(arg string) string {
	if arg == "" {
		return "''"
	}
	if strings.HasPrefix(arg, "~/") {
		return "~/" + quote(arg[2:])
	}
	return quote(arg)
}

func quote(s string) string {
	if s != "" && strings.Trim(s, shellSafe) == "" {
		return s
	}
	// Replace internal ' with '\'' and wrap in single quotes.
	return `'` + strings.ReplaceAll(s, "'", `'\''`) + `'`
}

// RenderCommand is the command line that re-renders a saved configuration.
func RenderCommand(configPath string) string {
	return "astrograph --import-config " + QuoteArgForShell(configPath)
}
