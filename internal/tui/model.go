// Package tui is an interactive browser over one calculation result:
// a summary tab, the per-year earnings detail, and the investment
// comparison, navigable from the keyboard.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/ssgo/internal/calculation"
	"github.com/rgehrsitz/ssgo/internal/config"
	"github.com/rgehrsitz/ssgo/internal/domain"
)

// Tab identifies one of the browser's views.
type Tab int

const (
	TabSummary Tab = iota
	TabEarnings
	TabInvestment
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabSummary:
		return "Summary"
	case TabEarnings:
		return "Earnings"
	case TabInvestment:
		return "Investment"
	default:
		return "Unknown"
	}
}

// Model is the browser's entire state.
type Model struct {
	path   string
	engine *calculation.Engine

	record domain.EarningsRecord
	result *domain.CalculationResult

	activeTab Tab
	viewport  viewport.Model

	width  int
	height int

	loading bool
	err     error
}

// NewModel creates a browser that will load the earnings file at path and
// calculate it with the given engine.
func NewModel(path string, engine *calculation.Engine) Model {
	return Model{
		path:    path,
		engine:  engine,
		loading: true,
		width:   80,
		height:  24,
	}
}

// Init kicks off the load-and-calculate command (tea.Model interface).
func (m Model) Init() tea.Cmd {
	return calculateCmd(m.path, m.engine)
}

// ResultMsg carries a finished calculation into the model.
type ResultMsg struct {
	Record domain.EarningsRecord
	Result *domain.CalculationResult
}

// ErrorMsg carries a load or calculation failure.
type ErrorMsg struct {
	Err error
}

// calculateCmd returns a command that loads the earnings file and runs the
// engine over it.
func calculateCmd(path string, engine *calculation.Engine) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		record, err := parser.LoadEarnings(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		result, err := engine.Calculate(record)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ResultMsg{Record: record, Result: result}
	}
}
