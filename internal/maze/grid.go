/*
Package maze builds and queries the rectangular cell grids the game is
played on.

A Grid starts out as solid Wall. Generate carves a perfect maze into it by
backtracking at stride 2 from (1,1), AddDecoys sprinkles short isolated
dead ends over the untouched rock, and CanMove gates every player step.
The outer 1-cell border is never opened.
*/
package maze

import (
	"fmt"
	"strings"
)

// Grid is a rows x cols matrix of cells stored in one flat slice.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates a grid with every cell set to Wall.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols), // Wall is the zero value
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("maze: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// At returns the cell at (row, col). It panics when out of range.
func (g *Grid) At(row, col int) Cell { return g.cells[g.index(row, col)] }

// Set stores c at (row, col). It panics when out of range.
func (g *Grid) Set(row, col int, c Cell) { g.cells[g.index(row, col)] = c }

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Interior reports whether (row, col) lies strictly inside the border.
func (g *Grid) Interior(row, col int) bool {
	return row > 0 && row < g.rows-1 && col > 0 && col < g.cols-1
}

// CanMove reports whether a player may stand on column x, row y.
func (g *Grid) CanMove(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows && g.cells[y*g.cols+x] != Wall
}

func (g *Grid) Clone() *Grid {
	cp := &Grid{rows: g.rows, cols: g.cols, cells: make([]Cell, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// String provides a textual representation of the grid.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			switch g.At(r, c) {
			case Wall:
				sb.WriteByte('#')
			case Exit:
				sb.WriteByte('E')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
