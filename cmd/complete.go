package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/etnz/rebalance/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commands registered in c, their flags and the
// global flags for shell completion.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		f := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(f)
		root.Sub[sub.Name()] = &complete.Command{
			Flags: flagPredictors(f),
			Args:  argsPredictor(sub.Name()),
		}
	})
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		switch {
		case isBoolFlag(fl):
			flags[fl.Name] = predict.Nothing
		case fl.Name == "log-file":
			flags[fl.Name] = predict.Files("*")
		case strings.HasSuffix(fl.Name, "-file"):
			flags[fl.Name] = predict.Files("*.csv")
		case fl.Name == "log-level":
			flags[fl.Name] = predict.Set{"debug", "info", "warn", "error"}
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}

func isBoolFlag(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func argsPredictor(command string) complete.Predictor {
	switch command {
	case "topic":
		topics, _ := docs.GetAllTopics()
		return predict.Set(topics)
	case "set":
		return complete.PredictFunc(predictTickers)
	}
	return nil
}

// predictTickers lists the tickers of the targets file.
func predictTickers(prefix string) []string {
	records, err := rebalance.ReadTargets(*targetsFile)
	if err != nil {
		return nil
	}
	var tickers []string
	for _, r := range records {
		if strings.HasPrefix(r.Ticker, prefix) {
			tickers = append(tickers, r.Ticker)
		}
	}
	return tickers
}
