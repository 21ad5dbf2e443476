package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/maze"
)

// DOTOptions configures ToDOT.
type DOTOptions struct {
	// Path cells are filled and path passages drawn bold.
	Path []gridgraph.GridPoint
	// Labels shows "row,col" inside each node instead of leaving it blank.
	Labels bool
}

// ToDOT converts a maze's passages to an undirected Graphviz graph. Each cell
// is a node pinned at its grid position so that neato draws the maze as laid
// out; each passage is an edge.
func ToDOT(grid gridgraph.Grid, passages []maze.Passage, opts DOTOptions) string {
	onPath := make(map[gridgraph.GridPoint]int, len(opts.Path))
	for i, p := range opts.Path {
		onPath[p] = i
	}

	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=square, style=filled, fillcolor=white, fixedsize=true, width=0.4, fontsize=8];\n")
	buf.WriteString("  edge [penwidth=2];\n")
	buf.WriteString("\n")

	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Columns; c++ {
			p := gridgraph.GridPoint{Row: r, Column: c}
			label := ""
			if opts.Labels {
				label = fmt.Sprintf("%d,%d", r, c)
			}
			attrs := fmt.Sprintf("label=%q, pos=\"%d,%d!\"", label, c, -r)
			if _, ok := onPath[p]; ok {
				attrs += ", fillcolor=palegreen"
			}
			fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(p), attrs)
		}
	}

	buf.WriteString("\n")
	for _, ps := range passages {
		i, okFrom := onPath[ps.From]
		j, okTo := onPath[ps.To]
		attrs := ""
		if okFrom && okTo && (i-j == 1 || j-i == 1) {
			attrs = " [color=darkgreen, penwidth=4]"
		}
		fmt.Fprintf(&buf, "  %q -- %q%s;\n", nodeID(ps.From), nodeID(ps.To), attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(p gridgraph.GridPoint) string {
	return fmt.Sprintf("c%d_%d", p.Row, p.Column)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
