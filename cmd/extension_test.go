package cmd

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installExtension writes a shell script named lazy-<name> in a folder added
// to the PATH.
func installExtension(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "lazy-"+name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunExtension(t *testing.T) {
	portfolioPath, _ := setupFiles(t, testTargets, "")
	*valueColumn = 3
	installExtension(t, "hello", `echo "args=$*"
echo "portfolio=$LAZY_PORTFOLIO_FILE"
echo "column=$LAZY_VALUE_COLUMN"
`)

	var out bytes.Buffer
	old := stdout
	stdout = &out
	defer func() { stdout = old }()

	found, code := RunExtension("hello", []string{"a", "b"})
	require.True(t, found)
	assert.Zero(t, code)
	assert.Contains(t, out.String(), "args=a b\n")
	assert.Contains(t, out.String(), "portfolio="+portfolioPath+"\n")
	assert.Contains(t, out.String(), "column=3\n")
}

func TestRunExtension_ExitCode(t *testing.T) {
	setupFiles(t, testTargets, "")
	installExtension(t, "fail", "exit 3\n")

	found, code := RunExtension("fail", nil)
	assert.True(t, found)
	assert.Equal(t, 3, code)
}

func TestRunExtension_NotFound(t *testing.T) {
	setupFiles(t, testTargets, "")

	found, _ := RunExtension("no-such-extension-anywhere", nil)
	assert.False(t, found)
}

func TestHasCommand(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("lazy", flag.ContinueOnError), "lazy")
	Register(commander)

	assert.True(t, HasCommand(commander, "rebalance"))
	assert.False(t, HasCommand(commander, "hello"))
}
