// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the interactive column picker: choose a data file,
// the x column and the y columns, set a few options, then save the result
// as a config file and render it.
package ui

import (
	"astrograph/internal/discovery"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	dir    string
	keymap KeyMap

	currentState state
	width        int
	height       int
	spinner      spinner.Model

	files      []discovery.DataFile
	scanErrors []error
	fileCursor int

	columns        []string
	columnCursor   int
	xAxis          string
	yPicks         []int // column indexes in the order they were picked
	formInputs     []textinput.Model
	formFocusIndex int
	interactive    bool
	uncertainties  bool
	legend         bool

	outputPath string
	savedPath  string
	statusLine string
	err        error
	errReturn  state
}

// InitialModel creates the picker for the data files under dir.
func InitialModel(dir string) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = statusStyle

	return model{
		dir:          dir,
		keymap:       DefaultKeyMap,
		currentState: stateLoadingFiles,
		spinner:      s,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, findDataFilesCmd(m.dir))
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		if m.currentState == stateLoadingFiles || m.currentState == stateRendering {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			return m, tea.Quit
		}
		switch m.currentState {
		case stateLoadingFiles, stateRendering:
			if key.Matches(msg, m.keymap.Quit) {
				return m, tea.Quit
			}
		case stateFileList:
			cmds = append(cmds, m.handleFileListKeys(msg))
		case stateXAxis:
			cmds = append(cmds, m.handleXAxisKeys(msg))
		case stateYAxes:
			cmds = append(cmds, m.handleYAxesKeys(msg))
		case stateOptions:
			cmds = append(cmds, m.handleOptionsKeys(msg)...)
		case stateDone:
			cmds = append(cmds, m.handleDoneKeys(msg))
		case stateError:
			cmds = append(cmds, m.handleErrorKeys(msg))
		}

	case filesLoadedMsg:
		m.handleFilesLoaded(msg)
	case renderFinishedMsg:
		m.handleRenderFinished(msg)
	case openFinishedMsg:
		m.handleOpenFinished(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) View() string {
	var body, footer string

	switch m.currentState {
	case stateLoadingFiles:
		body, footer = m.renderLoadingView()
	case stateFileList:
		body, footer = m.renderFileListView()
	case stateXAxis:
		body, footer = m.renderXAxisView()
	case stateYAxes:
		body, footer = m.renderYAxesView()
	case stateOptions:
		body, footer = m.renderOptionsView()
	case stateRendering:
		body, footer = m.renderRenderingView()
	case stateDone:
		body, footer = m.renderDoneView()
	case stateError:
		body, footer = m.renderErrorView()
	}

	header := titleStyle.Render("astrograph") + dimStyle.Render("  "+m.dir)
	content := mainContentBorderStyle.Render(body)
	if m.width > 2 {
		content = mainContentBorderStyle.Width(m.width - 2).Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}
