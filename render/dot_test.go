package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

func solved(t *testing.T, rows, cols int) *maze.Generator {
	t.Helper()
	gen := maze.New(maze.WithSeed(8))
	require.NoError(t, gen.Initialize(rows, cols))
	require.NoError(t, gen.Generate())

	return gen
}

func TestToDOT(t *testing.T) {
	gen := solved(t, 1, 3)
	path, err := gen.Solve()
	require.NoError(t, err)

	dot := render.ToDOT(gen.Grid(), gen.Passages(), render.DOTOptions{Path: path, Labels: true})
	assert.True(t, strings.HasPrefix(dot, "graph maze {\n"))
	assert.Contains(t, dot, `"c0_0" [label="0,0", pos="0,0!", fillcolor=palegreen];`)
	assert.Contains(t, dot, `"c0_2" [label="0,2", pos="2,0!", fillcolor=palegreen];`)
	assert.Contains(t, dot, `"c0_0" -- "c0_1" [color=darkgreen, penwidth=4];`)
	assert.Contains(t, dot, `"c0_1" -- "c0_2" [color=darkgreen, penwidth=4];`)
	assert.Equal(t, 2, strings.Count(dot, " -- "))
}

func TestToDOT_NoPath(t *testing.T) {
	gen := solved(t, 3, 3)
	dot := render.ToDOT(gen.Grid(), gen.Passages(), render.DOTOptions{})
	assert.Equal(t, 8, strings.Count(dot, " -- "))
	assert.Equal(t, 9, strings.Count(dot, `label=""`))
	assert.NotContains(t, dot, "palegreen")
	assert.Contains(t, dot, `"c2_1" [label="", pos="1,-2!"];`)
}

func TestRenderSVG(t *testing.T) {
	gen := solved(t, 2, 2)
	dot := render.ToDOT(gen.Grid(), gen.Passages(), render.DOTOptions{})

	svg, err := render.RenderSVG(context.Background(), dot)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
