package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

type setCmd struct{}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "update the dollar value held of an asset" }
func (*setCmd) Usage() string {
	return `lazy set <ticker> <amount>

  Replaces the dollar value held of an asset, e.g. after its price moved, and
  saves the portfolio file.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a ticker and an amount")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)
	value, err := rebalance.ParseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	log := newLogger()
	s, err := openSession(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := s.Portfolio.SetValue(ticker, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating %q: %v\n", ticker, err)
		return subcommands.ExitFailure
	}
	if err := saveSession(log, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PortfolioMarkdown(s.Portfolio, s.Untracked))
	return subcommands.ExitSuccess
}
