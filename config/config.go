// Package config loads labyrinth settings from a TOML file.
//
// Every field has a default, so a missing file or an empty document yields
// Default(). Grid dimensions are clamped to [MinDimension, MaxDimension]
// before they reach the generator.
//
// Example file:
//
//	rows = 12
//	columns = 20
//	seed = 42          # 0 picks a random seed
//	square_size = 20
//
//	[render]
//	color = true
//	solve = true
//
//	[server]
//	addr = ":8080"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/labyrinth/gridgraph"
)

// Dimension limits applied by Clamp.
const (
	MinDimension = 1
	MaxDimension = 20
)

// DefaultAddr is the listen address of the stream server.
const DefaultAddr = ":8080"

// ErrInvalidConfig is returned for unreadable documents, unknown keys and
// values that cannot be normalized.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the decoded configuration.
type Config struct {
	Rows       int    `toml:"rows"`
	Columns    int    `toml:"columns"`
	Seed       uint64 `toml:"seed"`
	SquareSize int    `toml:"square_size"`
	Render     Render `toml:"render"`
	Server     Server `toml:"server"`
}

// Render controls terminal and graph output.
type Render struct {
	Color bool `toml:"color"`
	Solve bool `toml:"solve"`
}

// Server controls the websocket stream server.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration: a 10×10 maze, random seed,
// colored output with the solution drawn.
func Default() Config {
	return Config{
		Rows:       10,
		Columns:    10,
		SquareSize: gridgraph.DefaultSquareSize,
		Render:     Render{Color: true, Solve: true},
		Server:     Server{Addr: DefaultAddr},
	}
}

// Load reads path on top of Default and normalizes the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.decode(string(data)); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a TOML document on top of Default and normalizes the result.
func Parse(doc string) (Config, error) {
	cfg := Default()
	if err := cfg.decode(doc); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) decode(doc string) error {
	md, err := toml.Decode(doc, c)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	return c.Normalize()
}

// Normalize clamps the grid dimensions and fills zero values with defaults.
// It fails when square_size is set below 2.
func (c *Config) Normalize() error {
	c.Rows = Clamp(c.Rows)
	c.Columns = Clamp(c.Columns)
	if c.SquareSize == 0 {
		c.SquareSize = gridgraph.DefaultSquareSize
	}
	if c.SquareSize < 2 {
		return fmt.Errorf("%w: square_size %d below 2", ErrInvalidConfig, c.SquareSize)
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}

	return nil
}

// Clamp limits a grid dimension to [MinDimension, MaxDimension].
func Clamp(n int) int {
	return min(max(n, MinDimension), MaxDimension)
}
