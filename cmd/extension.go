package cmd

import (
	"errors"
	"os"
	"os/exec"
	"strconv"

	"github.com/google/subcommands"
)

// HasCommand reports whether name is a command registered in c.
func HasCommand(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}

// RunExtension attempts to find and execute an external lazy-<subcommand>
// program with args.
//
// The global flags are passed through the environment variables they default
// from, so that the extension works on the same files. It returns (true,
// exitCode) if an extension was found and executed, and (false, 0) otherwise.
func RunExtension(subcommand string, args []string) (bool, int) {
	log := newLogger()
	name := "lazy-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Err(err).Str("extension", name).Msg("extension not found")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(),
		EnvTargetsFile+"="+*targetsFile,
		EnvPortfolioFile+"="+*portfolioFile,
		EnvValueColumn+"="+strconv.Itoa(*valueColumn),
		EnvLogLevel+"="+*logLevel,
		EnvLogPretty+"="+strconv.FormatBool(*logPretty),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		log.Error().Err(err).Str("extension", name).Msg("error executing extension")
		return true, 1
	}
	return true, 0
}
