package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

func (c *CLI) dotCommand() *cobra.Command {
	var (
		flags  mazeFlags
		output string
		labels bool
	)
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export the passage graph as Graphviz DOT or SVG",
		Long:  `dot writes DOT to stdout, or to --output. An output path ending in .svg is rendered with Graphviz.`,
		Example: `  labyrinth dot -r 5 -c 5 > maze.dot
  labyrinth dot -r 10 -c 10 -o maze.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			b, err := c.buildMaze(cfg, maze.ObserverFuncs{}, cfg.Render.Solve)
			if err != nil {
				return err
			}
			dot := render.ToDOT(b.gen.Grid(), b.gen.Passages(), render.DOTOptions{Path: b.path, Labels: labels})

			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}

			data := []byte(dot)
			if strings.EqualFold(filepath.Ext(output), ".svg") {
				prog := newProgress(c.Logger)
				if data, err = render.RenderSVG(cmd.Context(), dot); err != nil {
					return err
				}
				prog.done("Rendered SVG")
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg)")
	cmd.Flags().BoolVar(&labels, "labels", false, "label nodes with their coordinates")

	return cmd
}
