package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
)

// execute runs the root command with args and returns stdout and the log.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&out, &logs, log.DebugLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(&logs)
	err := root.Execute()

	return out.String(), logs.String(), err
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("hidden")
	assert.Zero(t, buf.Len())
	logger.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestGenerate_SingleRow(t *testing.T) {
	out, logs, err := execute(t, "generate", "-r", "1", "-c", "3", "--no-color", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "+---+---+---+\n  *   *   *  \n+---+---+---+\n")
	assert.Contains(t, out, "2 passages")
	assert.Regexp(t, `cost\s+2`, out)
	assert.Regexp(t, `cells\s+3`, out)
	assert.Contains(t, logs, "Generated 1x3 maze")
	assert.Contains(t, logs, "maze solved")
}

func TestGenerate_ClampsAndSkipsSolve(t *testing.T) {
	out, _, err := execute(t, "generate", "-r", "99", "-c", "0", "--no-color", "--no-solve")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// 20 rows of cells, 21 boundaries, one status line
	require.Len(t, lines, 2*20+1+1)
	assert.NotContains(t, out, "*")
	assert.NotContains(t, out, "cost")
	assert.Contains(t, out, "19 passages")
}

func TestGenerate_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labyrinth.toml")
	require.NoError(t, os.WriteFile(path, []byte("rows = 2\ncolumns = 1\n[render]\ncolor = false\n"), 0o600))

	out, _, err := execute(t, "generate", "--config", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "+---+\n  * |\n+   +\n| *  \n+---+\n"), out)

	// flags override the file
	out, _, err = execute(t, "generate", "--config", path, "-c", "2", "--no-solve")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "+---+---+\n"), out)
}

func TestGenerate_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("walls = 3\n"), 0o600))

	_, _, err := execute(t, "generate", "--config", path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestDot_Stdout(t *testing.T) {
	out, _, err := execute(t, "dot", "-r", "3", "-c", "3", "--seed", "1", "--labels")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph maze {"))
	assert.Equal(t, 8, strings.Count(out, " -- "))
	assert.Contains(t, out, `label="2,2"`)
}

func TestDot_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.dot")
	out, _, err := execute(t, "dot", "-r", "2", "-c", "2", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph maze {")
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "labyrinth v1.2.3")
	assert.Contains(t, out, "commit: abc123")
}
