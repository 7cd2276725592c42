package game

import "github.com/Meduza3/mazeescape/internal/maze"

type Player struct {
	X, Y  int // grid column and row
	Moves int
}

func NewPlayer(x, y int) *Player {
	return &Player{X: x, Y: y}
}

// Step moves the player by (dx, dy) if the target cell is walkable and
// reports whether it moved.
func (p *Player) Step(g *maze.Grid, dx, dy int) bool {
	if !g.CanMove(p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	p.Moves++
	return true
}

func (p *Player) At() maze.Point { return maze.Point{X: p.X, Y: p.Y} }
