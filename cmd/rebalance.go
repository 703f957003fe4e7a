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

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	amount string
	apply  bool
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "compute how to invest a contribution without selling" }
func (*rebalanceCmd) Usage() string {
	return `lazy rebalance -a <amount> [-apply]

  Computes how much of the contribution to buy of each asset so that the
  portfolio moves toward its targets without selling anything.

  With -apply, the purchases are added to the holdings and the portfolio file
  is rewritten.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "dollar amount to invest, e.g. 1000.00")
	f.BoolVar(&c.apply, "apply", false, "apply the plan and save the portfolio file")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	contribution, err := rebalance.ParseAmount(c.amount)
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

	plan, err := rebalance.Solve(contribution, s.Portfolio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing the plan: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, w := range plan.Warnings {
		log.Warn().Err(w).Msg("rebalance")
	}

	printMarkdown(renderer.PlanMarkdown(plan))

	if !c.apply {
		return subcommands.ExitSuccess
	}

	if err := s.Portfolio.Apply(plan); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying the plan: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveSession(log, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
