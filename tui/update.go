package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/etnz/rebalance"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case Editing:
			return m.updateEditing(msg)
		case Exec:
			return m.updateExec(msg)
		case ErrorDisplay:
			if key.Matches(msg, keys.Back) {
				return m.back(), nil
			}
			return m, nil
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Edit):
		if _, ok := m.selected(); !ok {
			return m, nil
		}
		return m.prompt(Editing)
	case key.Matches(msg, keys.Rebalance):
		return m.prompt(Exec)
	}

	var cmd tea.Cmd
	m.holdings, cmd = m.holdings.Update(msg)
	return m, cmd
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		return m.back(), nil
	case key.Matches(msg, keys.Enter):
		ticker, _ := m.selected()
		value, err := rebalance.ParseAmount(m.input.Value())
		if err != nil {
			return m.fail(err), nil
		}
		if err := m.portfolio.SetValue(ticker, value); err != nil {
			return m.fail(err), nil
		}
		m.log.Info().Str("ticker", ticker).Str("value", value.Dollar()).Msg("value updated")
		m.refreshHoldings()
		return m.back(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateExec(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		return m.back(), nil
	case key.Matches(msg, keys.Enter):
		return m.invest()
	}

	// only digits and the decimal point make it to the amount.
	if msg.Type == tea.KeyRunes && !amountRunes(msg.Runes) {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// invest solves the typed contribution, applies the plan and saves the
// portfolio.
func (m Model) invest() (tea.Model, tea.Cmd) {
	contribution, err := rebalance.ParseAmount(m.input.Value())
	if err != nil {
		return m.fail(err), nil
	}
	plan, err := rebalance.Solve(contribution, m.portfolio)
	if err != nil {
		return m.fail(err), nil
	}
	for _, w := range plan.Warnings {
		m.log.Warn().Err(w).Msg("rebalance")
	}
	before := m.portfolio.Clone()
	if err := m.portfolio.Apply(plan); err != nil {
		return m.fail(err), nil
	}
	if m.save != nil {
		if err := m.save(); err != nil {
			// the purchases are not recorded, so they did not happen.
			m.restore(before)
			return m.fail(err), nil
		}
	}
	m.log.Info().Str("contribution", contribution.Dollar()).Str("total", plan.NewTotal.Dollar()).Msg("rebalanced")

	m.plan = plan
	m.refreshResults()
	m.refreshHoldings()
	return m.back(), nil
}

// restore resets the portfolio values to the ones in snapshot.
func (m Model) restore(snapshot *rebalance.Portfolio) {
	for a := range snapshot.Assets() {
		if err := m.portfolio.SetValue(a.Ticker, a.Value); err != nil {
			m.log.Error().Err(err).Str("ticker", a.Ticker).Msg("cannot restore value")
		}
	}
}

// prompt switches to a text input mode.
func (m Model) prompt(mode Mode) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Reset()
	m.holdings.Blur()
	return m, m.input.Focus()
}

// back returns to Normal mode, dropping any pending input or error.
func (m Model) back() Model {
	m.mode = Normal
	m.err = nil
	m.input.Blur()
	m.input.Reset()
	m.holdings.Focus()
	return m
}

// fail switches to ErrorDisplay mode with err.
func (m Model) fail(err error) Model {
	m.log.Warn().Err(err).Str("mode", m.mode.String()).Msg("rejected")
	m.mode = ErrorDisplay
	m.err = err
	m.input.Blur()
	return m
}

func amountRunes(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}
