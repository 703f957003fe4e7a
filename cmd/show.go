package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the portfolio holdings and targets" }
func (*showCmd) Usage() string {
	return `lazy show

  Displays every asset with its dollar value, its share of the portfolio and
  its target allocation. Holdings without a target are listed apart.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := newLogger()

	s, err := openSession(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PortfolioMarkdown(s.Portfolio, s.Untracked))
	return subcommands.ExitSuccess
}
