package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boxStyle   = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m Model) View() string {
	sections := []string{
		titleStyle.Render("Lazy Rebalance"),
		boxStyle.Render(m.holdings.View()),
		fmt.Sprintf("Portfolio Value: %s", m.portfolio.TotalValue()),
	}

	switch m.mode {
	case Editing:
		ticker, _ := m.selected()
		sections = append(sections, labelStyle.Render("New value for "+ticker+":"), m.input.View())
	case Exec:
		sections = append(sections, labelStyle.Render("Amount to invest:"), m.input.View())
	case ErrorDisplay:
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.plan != nil {
		sections = append(sections,
			"",
			labelStyle.Render(fmt.Sprintf("Invested %s: %s → %s", m.plan.Contribution, m.plan.Total, m.plan.NewTotal)),
			boxStyle.Render(m.results.View()),
		)
	}

	sections = append(sections, "", m.viewHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewHelp() string {
	var parts []string
	for _, b := range keys.help(m.mode) {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
