package maze

import (
	"errors"
	"fmt"
)

const minSize = 3

var ErrInvalidSize = errors.New("invalid maze size")

// Carving steps. Each one skips over the wall cell that separates two rooms.
var strides = [4]Point{{X: 0, Y: 2}, {X: 0, Y: -2}, {X: 2, Y: 0}, {X: -2, Y: 0}}

// Generate allocates a rows x cols grid and carves a perfect maze into it
// starting from (1,1).
func Generate(rows, cols int, rng Source) (*Grid, error) {
	if rows < minSize || cols < minSize {
		return nil, fmt.Errorf("%w: %dx%d (need at least %dx%d)", ErrInvalidSize, rows, cols, minSize, minSize)
	}
	g := NewGrid(rows, cols)
	Carve(g, rng, 1, 1)
	return g, nil
}

func shuffledStrides(rng Source) [4]Point {
	d := strides
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
	return d
}

// frame is one pending cell of the depth-first carve.
type frame struct {
	at   Point
	dirs [4]Point
	next int
}

// Carve opens (row, col) and walks depth-first through every Wall room two
// steps away, opening the wall in between. Rooms are tried in a freshly
// shuffled direction order each time one is entered, and the walk backs up
// once a room has no closed neighbor left.
func Carve(g *Grid, rng Source, row, col int) {
	start := Point{X: col, Y: row}
	g.Set(row, col, Open)
	stack := []frame{{at: start, dirs: shuffledStrides(rng)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		nb := top.at.Add(d)
		if !g.Interior(nb.Y, nb.X) || g.At(nb.Y, nb.X) != Wall {
			continue
		}
		g.Set(top.at.Y+d.Y/2, top.at.X+d.X/2, Open)
		g.Set(nb.Y, nb.X, Open)
		// top is invalidated by the append below.
		stack = append(stack, frame{at: nb, dirs: shuffledStrides(rng)})
	}
}
