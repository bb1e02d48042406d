// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"

	"astrograph/internal/logger"
)

// --- Message Handlers ---

func (m *model) handleFilesLoaded(msg filesLoadedMsg) {
	m.files = msg.files
	m.scanErrors = msg.errs
	m.fileCursor = 0
	for _, err := range msg.errs {
		logger.Warn("Skipped data file", "error", err)
	}

	if len(m.files) == 0 {
		m.fail(fmt.Errorf("no data files found in %s", m.dir), stateLoadingFiles)
		return
	}
	m.currentState = stateFileList
}

func (m *model) handleRenderFinished(msg renderFinishedMsg) {
	m.savedPath = msg.configPath
	if msg.err != nil {
		logger.Error("Picker render failed", "error", msg.err)
		m.fail(msg.err, stateOptions)
		return
	}
	m.outputPath = msg.outputPath
	m.statusLine = ""
	m.currentState = stateDone
}

func (m *model) handleOpenFinished(msg openFinishedMsg) {
	if msg.err != nil {
		m.statusLine = errorStyle.Render(msg.err.Error())
		return
	}
	m.statusLine = successStyle.Render("Opened " + m.outputPath)
}
