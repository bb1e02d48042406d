// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"path/filepath"
	"strings"

	"astrograph/internal/config"
	"astrograph/internal/theme"

	"github.com/charmbracelet/bubbles/textinput"
)

var inputLabels = [inputCount]string{
	inputTitle:      "Title",
	inputOutputFile: "Output file",
	inputStyle:      "Style",
	inputConfigPath: "Save config",
}

// --- Form Creation ---

func createOptionsForm(dir string) []textinput.Model {
	inputs := make([]textinput.Model, inputCount)
	var t textinput.Model

	t = textinput.New()
	t.Placeholder = "Chart title (optional)"
	t.Focus() // Initial focus
	t.CharLimit = 120
	t.Width = 50
	inputs[inputTitle] = t

	t = textinput.New()
	t.Placeholder = "output_graph.png"
	t.CharLimit = 200
	t.Width = 50
	inputs[inputOutputFile] = t

	t = textinput.New()
	t.Placeholder = config.DefaultStyle
	t.CharLimit = 30
	t.Width = 30
	t.Validate = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		_, err := theme.Lookup(strings.TrimSpace(s))
		return err
	}
	inputs[inputStyle] = t

	t = textinput.New()
	t.Placeholder = filepath.Join(dir, defaultConfigName)
	t.CharLimit = 200
	t.Width = 50
	inputs[inputConfigPath] = t

	return inputs
}

// --- Form Submission ---

// pickedLayer turns the current selection and form values into a
// command-line-equivalent configuration layer. Empty inputs stay unsupplied.
func (m *model) pickedLayer() config.Layer {
	file := m.files[m.fileCursor]

	layer := config.Layer{
		File:             config.Some(file.Path),
		XAxis:            config.Some(m.xAxis),
		YAxes:            config.Some(m.selectedYAxes()),
		Interactive:      config.Some(m.interactive),
		UseUncertainties: config.Some(m.uncertainties),
		Legend:           config.Some(m.legend),
	}
	if file.Delimiter != "" {
		layer.Delimiter = config.Some(file.Delimiter)
	}
	if v := m.inputValue(inputTitle); v != "" {
		layer.Title = config.Some(v)
	}
	if v := m.inputValue(inputOutputFile); v != "" {
		layer.OutputFile = config.Some(v)
	}
	if v := m.inputValue(inputStyle); v != "" {
		layer.Style = config.Some(v)
	}
	return layer
}

func (m *model) configPath() string {
	if v := m.inputValue(inputConfigPath); v != "" {
		return v
	}
	return filepath.Join(m.dir, defaultConfigName)
}

func (m *model) inputValue(i int) string {
	return strings.TrimSpace(m.formInputs[i].Value())
}
