// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package runner launches external programs, currently the viewer used to
// open a rendered chart.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"astrograph/internal/logger"
)

// viewerEnvVar overrides the platform's default opener, e.g. "firefox" or
// "feh --scale-down".
const viewerEnvVar = "ASTROGRAPH_VIEWER"

// OpenCommand builds the command that opens path in the default viewer.
func OpenCommand(path string) *exec.Cmd {
	if viewer := strings.Fields(os.Getenv(viewerEnvVar)); len(viewer) > 0 {
		return exec.Command(viewer[0], append(viewer[1:], path)...)
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// Open opens path in the default viewer and waits for the launcher to exit.
// The launcher shares the terminal's stdout and stderr.
func Open(path string) error {
	return OpenTo(path, os.Stdout, os.Stderr)
}

// OpenTo is Open with the launcher's output sent to stdout and stderr.
func OpenTo(path string, stdout, stderr io.Writer) error {
	cmd := OpenCommand(path)
	cmdDesc := fmt.Sprintf("viewer '%s'", cmd.Path)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	logger.Debug("Opening chart", "path", path, "command", cmd.Args)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", cmdDesc, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) && exitError.ExitCode() != -1 {
			return fmt.Errorf("%s exited with status %d: %w", cmdDesc, exitError.ExitCode(), err)
		}
		return fmt.Errorf("%s failed: %w", cmdDesc, err)
	}
	return nil
}
