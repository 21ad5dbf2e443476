// Package render draws mazes for people: an ASCII picture for terminals and
// a Graphviz DOT/SVG picture of the passage graph.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/labyrinth/gridgraph"
)

var (
	colorWall = lipgloss.Color("245") // gray
	colorPath = lipgloss.Color("35")  // green
	colorDoor = lipgloss.Color("220") // amber
)

// Styles used by Terminal when color is enabled.
var (
	StyleWall = lipgloss.NewStyle().Foreground(colorWall)
	StylePath = lipgloss.NewStyle().Bold(true).Foreground(colorPath)
	StyleDoor = lipgloss.NewStyle().Foreground(colorDoor)
)

const (
	corner    = "+"
	wallH     = "---"
	wallV     = "|"
	openH     = "   "
	openV     = " "
	emptyCell = "   "
	pathCell  = " * "
	doorCell  = " > "
)

// Terminal is a maze.Observer that keeps a wall bitmap and the solution cells,
// and draws them as ASCII. The entrance is the open left side of (0,0) and
// the exit the open right side of the last cell.
type Terminal struct {
	rows, cols int
	open       [][]uint8 // bit d set ⇔ side d of the cell is open
	path       [][]bool
	color      bool
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithColor enables or disables lipgloss styling.
func WithColor(on bool) TerminalOption {
	return func(t *Terminal) { t.color = on }
}

// NewTerminal returns a Terminal for a rows×cols maze with every wall standing.
func NewTerminal(rows, cols int, opts ...TerminalOption) *Terminal {
	t := &Terminal{rows: rows, cols: cols, color: true}
	t.open = make([][]uint8, rows)
	t.path = make([][]bool, rows)
	for r := range rows {
		t.open[r] = make([]uint8, cols)
		t.path[r] = make([]bool, cols)
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Terminal) inBounds(p gridgraph.GridPoint) bool {
	return p.Row >= 0 && p.Row < t.rows && p.Column >= 0 && p.Column < t.cols
}

// OnWallRemoved opens the wall on both of its sides. Events outside the grid
// are ignored.
func (t *Terminal) OnWallRemoved(row, col int, dir gridgraph.Direction) {
	here := gridgraph.GridPoint{Row: row, Column: col}
	next := here.Move(dir)
	if !dir.Valid() || !t.inBounds(here) || !t.inBounds(next) {
		return
	}
	t.open[row][col] |= 1 << dir
	t.open[next.Row][next.Column] |= 1 << dir.Opposite()
}

// OnPathCellVisited marks a solution cell.
func (t *Terminal) OnPathCellVisited(row, col int) {
	if t.inBounds(gridgraph.GridPoint{Row: row, Column: col}) {
		t.path[row][col] = true
	}
}

// IsOpen reports whether side dir of (row, col) has been opened.
func (t *Terminal) IsOpen(row, col int, dir gridgraph.Direction) bool {
	if !dir.Valid() || !t.inBounds(gridgraph.GridPoint{Row: row, Column: col}) {
		return false
	}

	return t.open[row][col]&(1<<dir) != 0
}

// String draws the maze.
func (t *Terminal) String() string {
	var b strings.Builder
	for r := 0; r <= t.rows; r++ {
		t.writeBoundary(&b, r)
		if r < t.rows {
			t.writeCells(&b, r)
		}
	}

	return b.String()
}

// writeBoundary draws the horizontal walls above row r.
func (t *Terminal) writeBoundary(b *strings.Builder, r int) {
	b.WriteString(t.style(StyleWall, corner))
	for c := 0; c < t.cols; c++ {
		closed := r == 0 || r == t.rows || !t.IsOpen(r, c, gridgraph.Up)
		if closed {
			b.WriteString(t.style(StyleWall, wallH))
		} else {
			b.WriteString(openH)
		}
		b.WriteString(t.style(StyleWall, corner))
	}
	b.WriteByte('\n')
}

// writeCells draws the vertical walls and interiors of row r.
func (t *Terminal) writeCells(b *strings.Builder, r int) {
	for c := 0; c < t.cols; c++ {
		entrance := r == 0 && c == 0
		switch {
		case entrance:
			b.WriteString(openV)
		case t.IsOpen(r, c, gridgraph.Left):
			b.WriteString(openV)
		default:
			b.WriteString(t.style(StyleWall, wallV))
		}

		switch {
		case t.path[r][c]:
			b.WriteString(t.style(StylePath, pathCell))
		case entrance:
			b.WriteString(t.style(StyleDoor, doorCell))
		default:
			b.WriteString(emptyCell)
		}
	}
	if r == t.rows-1 {
		b.WriteString(openV)
	} else {
		b.WriteString(t.style(StyleWall, wallV))
	}
	b.WriteByte('\n')
}

func (t *Terminal) style(s lipgloss.Style, text string) string {
	if !t.color {
		return text
	}

	return s.Render(text)
}
