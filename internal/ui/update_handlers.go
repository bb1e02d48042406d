// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Update Handlers ---
// These methods handle key presses for specific UI states.

// moveCursor applies the navigation keys to cursor over a list of n items
// and reports whether msg was a navigation key.
func (m *model) moveCursor(msg tea.KeyMsg, cursor *int, n int) bool {
	switch {
	case key.Matches(msg, m.keymap.Up):
		if *cursor > 0 {
			*cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if *cursor < n-1 {
			*cursor++
		}
	case key.Matches(msg, m.keymap.Home):
		*cursor = 0
	case key.Matches(msg, m.keymap.End):
		if n > 0 {
			*cursor = n - 1
		}
	default:
		return false
	}
	return true
}

func (m *model) handleFileListKeys(msg tea.KeyMsg) tea.Cmd {
	if m.moveCursor(msg, &m.fileCursor, len(m.files)) {
		return nil
	}
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Enter):
		file := m.files[m.fileCursor]
		if len(file.Columns) < 2 {
			m.fail(fmt.Errorf("%s has %d column(s); at least two are needed", file.Name, len(file.Columns)), stateFileList)
			return nil
		}
		if !slices.Equal(m.columns, file.Columns) {
			m.xAxis = ""
			m.yPicks = nil
		}
		m.columns = file.Columns
		m.columnCursor = 0
		m.currentState = stateXAxis
	}
	return nil
}

func (m *model) handleXAxisKeys(msg tea.KeyMsg) tea.Cmd {
	if m.moveCursor(msg, &m.columnCursor, len(m.columns)) {
		return nil
	}
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Back):
		m.currentState = stateFileList
	case key.Matches(msg, m.keymap.Enter):
		m.xAxis = m.columns[m.columnCursor]
		m.yPicks = slices.DeleteFunc(m.yPicks, func(i int) bool { return i == m.columnCursor })
		m.columnCursor = 0
		m.currentState = stateYAxes
	}
	return nil
}

func (m *model) handleYAxesKeys(msg tea.KeyMsg) tea.Cmd {
	if m.moveCursor(msg, &m.columnCursor, len(m.columns)) {
		return nil
	}
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Back):
		m.columnCursor = slices.Index(m.columns, m.xAxis)
		m.currentState = stateXAxis
	case key.Matches(msg, m.keymap.Select):
		m.toggleY(m.columnCursor)
	case key.Matches(msg, m.keymap.Enter):
		if len(m.yPicks) == 0 {
			// Enter on an unpicked column picks just that one.
			m.toggleY(m.columnCursor)
		}
		if len(m.yPicks) == 0 {
			return nil
		}
		if m.formInputs == nil {
			m.formInputs = createOptionsForm(m.dir)
			m.formFocusIndex = 0
		}
		m.currentState = stateOptions
		return textinput.Blink
	}
	return nil
}

func (m *model) toggleY(i int) {
	if m.columns[i] == m.xAxis {
		return
	}
	if idx := slices.Index(m.yPicks, i); idx >= 0 {
		m.yPicks = slices.Delete(m.yPicks, idx, idx+1)
		return
	}
	m.yPicks = append(m.yPicks, i)
}

func (m *model) selectedYAxes() []string {
	names := make([]string, len(m.yPicks))
	for i, idx := range m.yPicks {
		names[i] = m.columns[idx]
	}
	return names
}

func (m *model) handleOptionsKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keymap.Esc):
		m.currentState = stateYAxes
		return nil
	case key.Matches(msg, m.keymap.ToggleInteractive):
		m.interactive = !m.interactive
		return nil
	case key.Matches(msg, m.keymap.ToggleUncertainties):
		m.uncertainties = !m.uncertainties
		return nil
	case key.Matches(msg, m.keymap.ToggleLegend):
		m.legend = !m.legend
		return nil
	case key.Matches(msg, m.keymap.Tab), key.Matches(msg, m.keymap.ShiftTab):
		if key.Matches(msg, m.keymap.Tab) {
			m.formFocusIndex = (m.formFocusIndex + 1) % len(m.formInputs)
		} else {
			m.formFocusIndex = (m.formFocusIndex + len(m.formInputs) - 1) % len(m.formInputs)
		}
		for i := range m.formInputs {
			if i == m.formFocusIndex {
				cmds = append(cmds, m.formInputs[i].Focus())
			} else {
				m.formInputs[i].Blur()
			}
		}
		return cmds
	case key.Matches(msg, m.keymap.Enter):
		if err := m.formInputs[inputStyle].Err; err != nil {
			m.statusLine = errorStyle.Render(err.Error())
			return nil
		}
		m.statusLine = ""
		m.currentState = stateRendering
		return []tea.Cmd{m.spinner.Tick, renderCmd(m.pickedLayer(), m.configPath())}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocusIndex], cmd = m.formInputs[m.formFocusIndex].Update(msg)
	return append(cmds, cmd)
}

func (m *model) handleDoneKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Open):
		return openCmd(m.outputPath)
	case key.Matches(msg, m.keymap.Back):
		m.statusLine = ""
		m.currentState = stateOptions
	}
	return nil
}

func (m *model) handleErrorKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Back), key.Matches(msg, m.keymap.Enter):
		if len(m.files) == 0 {
			return tea.Quit
		}
		m.err = nil
		m.currentState = m.errReturn
	}
	return nil
}

// fail shows err; dismissing it returns to the given state.
func (m *model) fail(err error, returnTo state) {
	m.err = err
	m.errReturn = returnTo
	m.currentState = stateError
}
