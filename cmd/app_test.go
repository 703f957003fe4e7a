package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupFiles writes the targets and, when not empty, the portfolio file in a
// temporary folder and points the global flags at them.
func setupFiles(t *testing.T, targets, portfolio string) (portfolioPath string, logs *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	targetsPath := filepath.Join(dir, "targets.csv")
	portfolioPath = filepath.Join(dir, "portfolio.csv")
	require.NoError(t, os.WriteFile(targetsPath, []byte(targets), 0644))
	if portfolio != "" {
		require.NoError(t, os.WriteFile(portfolioPath, []byte(portfolio), 0644))
	}

	set := func(p *string, v string) {
		old := *p
		*p = v
		t.Cleanup(func() { *p = old })
	}
	set(targetsFile, targetsPath)
	set(portfolioFile, portfolioPath)
	set(logLevel, "info")
	oldColumn, oldPretty := *valueColumn, *logPretty
	*valueColumn, *logPretty = 1, false
	t.Cleanup(func() { *valueColumn, *logPretty = oldColumn, oldPretty })

	logs = new(bytes.Buffer)
	oldErr := stderr
	stderr = logs
	t.Cleanup(func() { stderr = oldErr })
	return portfolioPath, logs
}

// execute runs c with args and returns its status and what it printed.
func execute(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))

	var out bytes.Buffer
	old := stdout
	stdout = &out
	defer func() { stdout = old }()

	status := c.Execute(context.Background(), f)
	return status, out.String()
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

const testTargets = "VTI,50%\nBND,50%\n"

func TestRebalanceCmd(t *testing.T) {
	path, _ := setupFiles(t, testTargets, "VTI,$700.00\nBND,$300.00\n")

	status, out := execute(t, &rebalanceCmd{}, "-a", "200.00")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "BND")
	assert.Contains(t, out, "$200.00")
	assert.Equal(t, "VTI,$700.00\nBND,$300.00\n", readFile(t, path), "without -apply nothing is written")

	status, _ = execute(t, &rebalanceCmd{}, "-a", "200.00", "-apply")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "VTI,$700.00\nBND,$500.00\n", readFile(t, path))
}

func TestRebalanceCmd_InvalidAmount(t *testing.T) {
	setupFiles(t, testTargets, "VTI,$700.00\nBND,$300.00\n")

	for _, amount := range []string{"", "12.5", "-100", "abc"} {
		status, _ := execute(t, &rebalanceCmd{}, "-a", amount)
		assert.Equal(t, subcommands.ExitUsageError, status, amount)
	}
}

func TestRebalanceCmd_MissingPortfolio(t *testing.T) {
	path, logs := setupFiles(t, testTargets, "")

	status, _ := execute(t, &rebalanceCmd{}, "-a", "1000", "-apply")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "VTI,$500.00\nBND,$500.00\n", readFile(t, path))
	assert.Contains(t, logs.String(), "does not exist")
}

func TestRebalanceCmd_MissingTargets(t *testing.T) {
	setupFiles(t, testTargets, "VTI,$700.00\n")
	*targetsFile = filepath.Join(t.TempDir(), "missing.csv")

	status, _ := execute(t, &rebalanceCmd{}, "-a", "1000")
	assert.Equal(t, subcommands.ExitFailure, status)
}

func TestRebalanceCmd_OtherValueColumn(t *testing.T) {
	path, logs := setupFiles(t, testTargets, "VTI,10,$700.00\nBND,3,$300.00\n")
	*valueColumn = 2

	status, _ := execute(t, &rebalanceCmd{}, "-a", "200.00", "-apply")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "VTI,$700.00\nBND,$500.00\n", readFile(t, path))
	assert.Contains(t, logs.String(), "two columns")
}

func TestSetCmd(t *testing.T) {
	path, _ := setupFiles(t, testTargets, "VTI,$700.00\nBND,$300.00\nGLD,$50.00\n")

	status, out := execute(t, &setCmd{}, "BND", "350.00")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "$350.00")
	assert.Equal(t, "VTI,$700.00\nBND,$350.00\nGLD,$50.00\n", readFile(t, path), "untracked holdings are kept")

	status, _ = execute(t, &setCmd{}, "XYZ", "1.00")
	assert.Equal(t, subcommands.ExitFailure, status)

	status, _ = execute(t, &setCmd{}, "BND")
	assert.Equal(t, subcommands.ExitUsageError, status)

	status, _ = execute(t, &setCmd{}, "BND", "$3")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestShowCmd(t *testing.T) {
	setupFiles(t, testTargets, "VTI,$700.00\nBND,$300.00\nGLD,$50.00\n")

	status, out := execute(t, &showCmd{})
	assert.Equal(t, subcommands.ExitSuccess, status)
	for _, want := range []string{"VTI", "BND", "GLD", "$1,000.00", "70.00%"} {
		assert.Contains(t, out, want)
	}
}

func TestTopicCmd(t *testing.T) {
	status, out := execute(t, &topicCmd{}, "rebalance")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.NotEmpty(t, out)

	status, _ = execute(t, &topicCmd{}, "no-such-topic")
	assert.Equal(t, subcommands.ExitUsageError, status)

	status, out = execute(t, &topicCmd{}, "*")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "LAZY_TARGETS_FILE", "every topic, configuration included")

	status, out = execute(t, &topicCmd{}, "-l")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "configuration\nconsole\nfiles\nrebalance\n", out)
}
