// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateLoadingFiles state = iota
	stateFileList
	stateXAxis
	stateYAxes
	stateOptions
	stateRendering
	stateDone
	stateError
)

// Indexes of the inputs on the options form.
const (
	inputTitle = iota
	inputOutputFile
	inputStyle
	inputConfigPath
	inputCount
)

const (
	headerHeight = 1 // Height reserved for the main title header.
	footerHeight = 2

	// defaultConfigName is written next to the data when no path is entered.
	defaultConfigName = "astrograph.yaml"
)
