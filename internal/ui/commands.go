// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's commands.go file contains Bubble Tea commands that perform
// the slow work of the picker (scanning, rendering, launching the viewer)
// without blocking the UI.

package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"astrograph/internal/config"
	"astrograph/internal/discovery"
	"astrograph/internal/logger"
	"astrograph/internal/plotspec"
	"astrograph/internal/render"
	"astrograph/internal/runner"

	tea "github.com/charmbracelet/bubbletea"
)

// findDataFilesCmd scans dir for data files in the background.
func findDataFilesCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		files, errs := discovery.CollectDataFiles(dir)
		return filesLoadedMsg{files: files, errs: errs}
	}
}

// renderCmd resolves the picked layer, saves it as a config file and renders
// the chart it describes.
func renderCmd(layer config.Layer, configPath string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Resolve(layer, "")
		if err != nil {
			return renderFinishedMsg{err: err}
		}
		if err := config.Export(cfg, configPath); err != nil {
			return renderFinishedMsg{err: err}
		}
		logger.Info("Saved picked configuration", "path", configPath)

		spec, err := plotspec.Load(cfg)
		if err != nil {
			return renderFinishedMsg{configPath: configPath, err: err}
		}
		out, err := render.Write(spec)
		if err != nil {
			return renderFinishedMsg{configPath: configPath, err: err}
		}
		return renderFinishedMsg{outputPath: out, configPath: configPath}
	}
}

// openCmd launches the viewer with its output kept off the alt screen.
// Anything the launcher prints to stderr is folded into the error.
func openCmd(path string) tea.Cmd {
	return func() tea.Msg {
		var stderr bytes.Buffer
		if err := runner.OpenTo(path, io.Discard, &stderr); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				err = fmt.Errorf("%w: %s", err, msg)
			}
			return openFinishedMsg{fmt.Errorf("failed to open %s: %w", path, err)}
		}
		if stderr.Len() > 0 {
			logger.Debug("Viewer output", "stderr", strings.TrimSpace(stderr.String()))
		}
		return openFinishedMsg{}
	}
}
