// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"
	"log/slog"
	"os"

	"astrograph/internal/discovery"
	"astrograph/internal/logger"
	"astrograph/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI initializes and runs the column picker over the data files in dir.
func RunTUI(dir string) error {
	// The TUI owns the terminal, so logs only go to the file.
	logger.Init(logger.Options{ToFile: true, Level: slog.LevelInfo})

	root, err := discovery.DataDirectory(dir)
	if err != nil {
		return err
	}

	m := ui.InitialModel(root)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		return err
	}
	return nil
}
