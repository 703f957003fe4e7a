package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Edit      key.Binding
	Rebalance key.Binding
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Back      key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit value")),
	Rebalance: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rebalance")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// help returns the bindings to advertise in mode.
func (k keyMap) help(mode Mode) []key.Binding {
	switch mode {
	case Editing, Exec:
		return []key.Binding{k.Enter, k.Back}
	case ErrorDisplay:
		return []key.Binding{k.Back}
	}
	return []key.Binding{k.Up, k.Down, k.Edit, k.Rebalance, k.Quit}
}
