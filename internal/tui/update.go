package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state (tea.Model
// interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, contentHeight(msg.Height))
		m.viewport.SetContent(m.tabContent())
		return m, nil

	case ResultMsg:
		m.loading = false
		m.record = msg.Record
		m.result = msg.Result
		m.viewport = viewport.New(m.width, contentHeight(m.height))
		m.viewport.SetContent(m.tabContent())
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "tab", "right", "l":
		m.activeTab = (m.activeTab + 1) % tabCount
		m.viewport.SetContent(m.tabContent())
		m.viewport.GotoTop()
		return m, nil

	case "shift+tab", "left", "h":
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		m.viewport.SetContent(m.tabContent())
		m.viewport.GotoTop()
		return m, nil

	case "r":
		m.loading = true
		m.err = nil
		return m, calculateCmd(m.path, m.engine)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// contentHeight leaves room for the title, tab row, and status bar.
func contentHeight(total int) int {
	height := total - 4
	if height < 1 {
		height = 1
	}
	return height
}
