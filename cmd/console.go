package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/etnz/rebalance/tui"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

type consoleCmd struct {
	logFile string
}

func (*consoleCmd) Name() string     { return "console" }
func (*consoleCmd) Synopsis() string { return "interactive console to edit values and invest" }
func (*consoleCmd) Usage() string {
	return `lazy console [-log-file <file>]

  Opens an interactive view of the portfolio.

  Keys: ↑/↓ select an asset, e edit its value, r invest a contribution,
  enter confirm, esc cancel, q quit.

  The portfolio file is saved after every investment.
`
}

func (c *consoleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.logFile, "log-file", "", "append logs to this file, the console takes over the terminal")
}

func (c *consoleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := zerolog.Nop()
	if c.logFile != "" {
		w, err := os.OpenFile(c.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %q: %v\n", c.logFile, err)
			return subcommands.ExitFailure
		}
		defer w.Close()
		log = NewLogger(w, *logLevel, false)
	}

	s, err := openSession(newLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	save := func() error { return saveSession(log, s) }
	p := tea.NewProgram(tui.NewModel(s.Portfolio, save, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
