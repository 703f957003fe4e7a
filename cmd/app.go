// Package cmd implements the CLI application to lazily rebalance a portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&showCmd{}, "portfolio")
	c.Register(&rebalanceCmd{}, "portfolio")
	c.Register(&setCmd{}, "portfolio")
	c.Register(&consoleCmd{}, "portfolio")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var config = LoadConfig()

var (
	targetsFile   = flag.String("targets-file", config.TargetsFile, "Path to the targets CSV file (ticker,percent). Defaults to $"+EnvTargetsFile)
	portfolioFile = flag.String("portfolio-file", config.PortfolioFile, "Path to the portfolio CSV file (ticker,$value). Defaults to $"+EnvPortfolioFile)
	valueColumn   = flag.Int("value-column", config.ValueColumn, "Column of the portfolio file holding the dollar value, the ticker being column 0. Defaults to $"+EnvValueColumn)
	logLevel      = flag.String("log-level", config.LogLevel, "Log level: debug, info, warn or error. Defaults to $"+EnvLogLevel)
	logPretty     = flag.Bool("log-pretty", config.LogPretty, "Human readable logs instead of JSON. Defaults to $"+EnvLogPretty)
)

// stdout receives the reports, logs go to stderr.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// newLogger returns the logger configured by the global flags.
func newLogger() zerolog.Logger {
	return NewLogger(stderr, *logLevel, *logPretty)
}

// currentConfig returns the configuration after flag parsing.
func currentConfig() *Config {
	return &Config{
		TargetsFile:   *targetsFile,
		PortfolioFile: *portfolioFile,
		ValueColumn:   *valueColumn,
		LogLevel:      *logLevel,
		LogPretty:     *logPretty,
	}
}

// openSession loads the portfolio from the app files.
//
// A missing portfolio file is not an error: nothing is held yet and the file
// is created on the first save.
func openSession(log zerolog.Logger) (*rebalance.Session, error) {
	cfg := currentConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s, err := rebalance.Load(cfg.TargetsFile, cfg.PortfolioFile, cfg.ValueColumn)
	if errors.Is(err, fs.ErrNotExist) {
		if _, statErr := os.Stat(cfg.PortfolioFile); errors.Is(statErr, fs.ErrNotExist) {
			log.Warn().Str("file", cfg.PortfolioFile).Msg("portfolio file does not exist, starting with nothing held")
			s, err = rebalance.LoadEmpty(cfg.TargetsFile, cfg.PortfolioFile, cfg.ValueColumn)
		}
	}
	if err != nil {
		return nil, err
	}

	for _, h := range s.Untracked {
		log.Warn().Str("ticker", h.Ticker).Str("value", h.Value.Dollar()).Msg("holding has no target, it is kept as is")
	}
	log.Debug().Str("targets", s.TargetsFile).Str("portfolio", s.PortfolioFile).Int("assets", s.Portfolio.Len()).Msg("portfolio loaded")
	return s, nil
}

// saveSession writes the portfolio file back.
func saveSession(log zerolog.Logger, s *rebalance.Session) error {
	if s.ValueColumn != rebalance.DefaultValueColumn {
		log.Warn().Int("column", s.ValueColumn).Str("file", s.PortfolioFile).Msg("the portfolio file is rewritten with two columns, ticker and value")
	}
	if err := s.Save(); err != nil {
		return err
	}
	log.Info().Str("file", s.PortfolioFile).Msg("portfolio saved")
	return nil
}

// printMarkdown renders md for the terminal, or prints it as is when it
// cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
