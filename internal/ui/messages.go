// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's messages.go file defines the message types used in the Bubble Tea
// Model-View-Update architecture.

package ui

import "astrograph/internal/discovery"

// Sent once the data directory has been scanned.
type filesLoadedMsg struct {
	files []discovery.DataFile
	errs  []error
}

// Result of resolving, exporting and rendering the picked configuration.
type renderFinishedMsg struct {
	outputPath string
	configPath string
	err        error
}

type openFinishedMsg struct{ err error } // Result of launching the viewer
