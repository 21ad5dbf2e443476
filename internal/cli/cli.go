// Package cli implements the labyrinth command-line interface.
//
// # Commands
//
//   - generate: carve a maze, solve it and draw it in the terminal
//   - dot:      write the passage graph as Graphviz DOT or SVG
//   - serve:    stream mazes over websockets
//
// # Logging
//
// All commands log to stderr through charmbracelet/log. --verbose (-v)
// switches from info to debug level.
//
// # Configuration
//
// --config points at a TOML file (see package config). Flags given on the
// command line override values from the file.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
)

const appName = "labyrinth"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a CLI writing results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(logw, level), out: out}
}

// newLogger creates a logger with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Generate and solve perfect mazes",
		Long:         `labyrinth carves perfect mazes with a union-find spanning tree and solves them with breadth-first search.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetOut(c.out)
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().String("config", "", "TOML configuration file")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// mazeFlags are the grid flags shared by generate and dot.
type mazeFlags struct {
	rows, columns int
	seed          uint64
}

func (f *mazeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.rows, "rows", "r", 0, "number of rows (1-20)")
	cmd.Flags().IntVarP(&f.columns, "columns", "c", 0, "number of columns (1-20)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (0 picks one)")
}

// loadConfig reads --config and applies any explicitly set grid flags.
func (c *CLI) loadConfig(cmd *cobra.Command, f *mazeFlags) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if f != nil {
		if cmd.Flags().Changed("rows") {
			cfg.Rows = f.rows
		}
		if cmd.Flags().Changed("columns") {
			cfg.Columns = f.columns
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = f.seed
		}
	}
	if err := cfg.Normalize(); err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("configuration", "rows", cfg.Rows, "columns", cfg.Columns, "seed", cfg.Seed)

	return cfg, nil
}
