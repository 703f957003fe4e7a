// Package tui implements the interactive console: a terminal view of the
// portfolio where values can be edited and contributions invested.
package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/etnz/rebalance"
	"github.com/rs/zerolog"
)

// Model is the console state. It owns the portfolio for the duration of the
// session and calls save after every applied rebalance.
type Model struct {
	portfolio *rebalance.Portfolio
	save      func() error
	log       zerolog.Logger

	mode   Mode
	err    error
	plan   *rebalance.Plan // last applied plan, nil until the first rebalance
	width  int
	height int

	// Components
	holdings table.Model
	results  table.Model
	input    textinput.Model
}

// NewModel returns the console model for p. save persists p; it may be nil
// when nothing needs to be written.
func NewModel(p *rebalance.Portfolio, save func() error, log zerolog.Logger) Model {
	input := textinput.New()
	input.Prompt = "$ "
	input.Placeholder = "1000.00"
	input.CharLimit = 20

	holdings := table.New(
		table.WithColumns([]table.Column{
			{Title: "Ticker", Width: 10},
			{Title: "Value", Width: 16},
			{Title: "Target", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(max(p.Len(), 1)+1),
	)
	results := table.New(
		table.WithColumns([]table.Column{
			{Title: "Ticker", Width: 10},
			{Title: "Holding", Width: 10},
			{Title: "New Holding", Width: 12},
			{Title: "Target Value", Width: 16},
			{Title: "Buy", Width: 16},
		}),
		table.WithHeight(max(p.Len(), 1)+1),
	)

	m := Model{
		portfolio: p,
		save:      save,
		log:       log,
		holdings:  holdings,
		results:   results,
		input:     input,
	}
	m.refreshHoldings()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Mode returns the current input mode.
func (m Model) Mode() Mode { return m.mode }

// Plan returns the last applied plan, or nil.
func (m Model) Plan() *rebalance.Plan { return m.plan }

// Err returns the error on display in ErrorDisplay mode.
func (m Model) Err() error { return m.err }

// refreshHoldings reloads the holdings table from the portfolio.
func (m *Model) refreshHoldings() {
	rows := make([]table.Row, 0, m.portfolio.Len())
	for a := range m.portfolio.Assets() {
		rows = append(rows, table.Row{a.Ticker, a.Value.String(), a.Target.String()})
	}
	m.holdings.SetRows(rows)
}

// refreshResults loads the plan into the results table.
func (m *Model) refreshResults() {
	rows := make([]table.Row, 0, len(m.plan.Lines))
	for _, r := range m.plan.Rows() {
		rows = append(rows, table.Row{r.Ticker, r.Holding, r.NewHolding, r.TargetValue, r.Buy})
	}
	m.results.SetRows(rows)
}

// selected returns the ticker under the cursor.
func (m Model) selected() (string, bool) {
	row := m.holdings.SelectedRow()
	if len(row) == 0 {
		return "", false
	}
	return row[0], true
}
