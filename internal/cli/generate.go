package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/render"
)

func (c *CLI) generateCommand() *cobra.Command {
	var (
		flags   mazeFlags
		noSolve bool
		noColor bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and draw it",
		Example: `  labyrinth generate -r 8 -c 12
  labyrinth generate --seed 42 --no-solve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			solve := cfg.Render.Solve && !noSolve
			color := cfg.Render.Color && !noColor

			prog := newProgress(c.Logger)
			term := render.NewTerminal(cfg.Rows, cfg.Columns, render.WithColor(color))
			b, err := c.buildMaze(cfg, term, solve)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Generated %dx%d maze", cfg.Rows, cfg.Columns))

			out := cmd.OutOrStdout()
			fmt.Fprint(out, term.String())
			printSuccess(out, "%d passages", len(b.gen.Passages()))
			if solve {
				printKeyValue(out, "cost", fmt.Sprint(b.cost))
				printKeyValue(out, "cells", fmt.Sprint(len(b.path)))
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&noSolve, "no-solve", false, "do not draw the solution")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")

	return cmd
}
