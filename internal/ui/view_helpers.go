// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"slices"
	"strings"

	"astrograph/internal/util"

	"github.com/charmbracelet/bubbles/key"
)

// --- View Helpers ---

// renderFooter formats key bindings as "key desc | key desc".
func renderFooter(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return footerStyle.Render(strings.Join(parts, footerSeparatorStyle.Render(" | ")))
}

// visibleWindow returns the [start, end) slice of an n-item list that keeps
// the cursor on screen.
func (m *model) visibleWindow(cursor, n int) (int, int) {
	rows := m.height - headerHeight - footerHeight - 4
	if m.height == 0 || rows <= 0 || n <= rows {
		return 0, n
	}
	start := cursor - rows/2
	start = max(0, min(start, n-rows))
	return start, start + rows
}

func cursorPrefix(active bool) string {
	if active {
		return cursorStyle.Render("> ")
	}
	return "  "
}

// --- State-Specific View Renderers ---
// These functions generate the body and footer content for specific UI states.

func (m *model) renderLoadingView() (string, string) {
	body := m.spinner.View() + statusStyle.Render(" Scanning for data files...")
	return body, renderFooter(m.keymap.Quit)
}

func (m *model) renderFileListView() (string, string) {
	var b strings.Builder
	b.WriteString("Select a data file:\n")

	start, end := m.visibleWindow(m.fileCursor, len(m.files))
	for i := start; i < end; i++ {
		f := m.files[i]
		fmt.Fprintf(&b, "%s%s %s\n",
			cursorPrefix(i == m.fileCursor),
			f.Name,
			dimStyle.Render(fmt.Sprintf("(%d columns)", len(f.Columns))))
	}
	if len(m.scanErrors) > 0 {
		b.WriteString(errorStyle.Render(fmt.Sprintf("\n%d file(s) could not be read; see the log.", len(m.scanErrors))))
	}
	return b.String(), renderFooter(m.keymap.Up, m.keymap.Down, m.keymap.Enter, m.keymap.Quit)
}

func (m *model) renderXAxisView() (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nSelect the x-axis column:\n", identifierColor.Render(m.files[m.fileCursor].Name))

	start, end := m.visibleWindow(m.columnCursor, len(m.columns))
	for i := start; i < end; i++ {
		fmt.Fprintf(&b, "%s%s\n", cursorPrefix(i == m.columnCursor), m.columns[i])
	}
	return b.String(), renderFooter(m.keymap.Up, m.keymap.Down, m.keymap.Enter, m.keymap.Back, m.keymap.Quit)
}

func (m *model) renderYAxesView() (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  x: %s\nSelect the y-axis columns:\n",
		identifierColor.Render(m.files[m.fileCursor].Name), identifierColor.Render(m.xAxis))

	start, end := m.visibleWindow(m.columnCursor, len(m.columns))
	for i := start; i < end; i++ {
		name := m.columns[i]
		var mark string
		switch {
		case name == m.xAxis:
			mark = dimStyle.Render("[x] ")
			name = dimStyle.Render(name)
		case slices.Contains(m.yPicks, i):
			mark = selectedStyle.Render(fmt.Sprintf("[%d] ", slices.Index(m.yPicks, i)+1))
		default:
			mark = "[ ] "
		}
		fmt.Fprintf(&b, "%s%s%s\n", cursorPrefix(i == m.columnCursor), mark, name)
	}
	return b.String(), renderFooter(m.keymap.Up, m.keymap.Down, m.keymap.Select, m.keymap.Enter, m.keymap.Back, m.keymap.Quit)
}

func checkbox(label string, on bool) string {
	if on {
		return selectedStyle.Render("[x] " + label)
	}
	return "[ ] " + label
}

func (m *model) renderOptionsView() (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  x: %s  y: %s\n\n",
		identifierColor.Render(m.files[m.fileCursor].Name),
		identifierColor.Render(m.xAxis),
		identifierColor.Render(strings.Join(m.selectedYAxes(), ", ")))

	for i, input := range m.formInputs {
		fmt.Fprintf(&b, "%s%s%s\n", cursorPrefix(i == m.formFocusIndex), labelStyle.Render(inputLabels[i]), input.View())
	}
	fmt.Fprintf(&b, "\n  %s   %s   %s\n",
		checkbox("interactive", m.interactive),
		checkbox("error bars", m.uncertainties),
		checkbox("legend", m.legend))
	if m.statusLine != "" {
		b.WriteString("\n" + m.statusLine)
	}
	return b.String(), renderFooter(m.keymap.Tab, m.keymap.ToggleInteractive, m.keymap.ToggleUncertainties,
		m.keymap.ToggleLegend, m.keymap.Enter, m.keymap.Esc, m.keymap.ForceQuit)
}

func (m *model) renderRenderingView() (string, string) {
	body := m.spinner.View() + statusStyle.Render(" Rendering chart...")
	return body, renderFooter(m.keymap.Quit)
}

func (m *model) renderDoneView() (string, string) {
	var b strings.Builder
	b.WriteString(successStyle.Render("Chart written to "+m.outputPath) + "\n")
	fmt.Fprintf(&b, "Config saved to %s\n", identifierColor.Render(m.savedPath))
	fmt.Fprintf(&b, "%s\n", dimStyle.Render("Re-render with: "+util.RenderCommand(m.savedPath)))
	if m.statusLine != "" {
		b.WriteString("\n" + m.statusLine)
	}
	return b.String(), renderFooter(m.keymap.Open, m.keymap.Back, m.keymap.Quit)
}

func (m *model) renderErrorView() (string, string) {
	body := errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	return body, renderFooter(m.keymap.Back, m.keymap.Quit)
}
