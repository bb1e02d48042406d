// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package runner

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenCommandUsesViewerOverride(t *testing.T) {
	t.Setenv(viewerEnvVar, "feh --scale-down")
	cmd := OpenCommand("chart.png")
	assert.Equal(t, []string{"feh", "--scale-down", "chart.png"}, cmd.Args)
}

func TestOpenCommandDefault(t *testing.T) {
	t.Setenv(viewerEnvVar, "")
	cmd := OpenCommand("chart.png")
	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, []string{"open", "chart.png"}, cmd.Args)
	case "windows":
		assert.Equal(t, []string{"rundll32", "url.dll,FileProtocolHandler", "chart.png"}, cmd.Args)
	default:
		assert.Equal(t, []string{"xdg-open", "chart.png"}, cmd.Args)
	}
}

func TestOpenReportsExitStatus(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the true/false utilities")
	}

	t.Setenv(viewerEnvVar, "true")
	assert.NoError(t, Open("chart.png"))

	t.Setenv(viewerEnvVar, "false")
	err := Open("chart.png")
	assert.ErrorContains(t, err, "exited with status 1")
}

func TestOpenToCapturesLauncherOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the echo/cat utilities")
	}

	var stdout, stderr bytes.Buffer
	t.Setenv(viewerEnvVar, "echo opening")
	assert.NoError(t, OpenTo("chart.png", &stdout, &stderr))
	assert.Equal(t, "opening chart.png\n", stdout.String())
	assert.Empty(t, stderr.String())

	stdout.Reset()
	t.Setenv(viewerEnvVar, "cat")
	err := OpenTo(t.TempDir()+"/missing.png", &stdout, &stderr)
	assert.ErrorContains(t, err, "exited with status 1")
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "missing.png")
}
