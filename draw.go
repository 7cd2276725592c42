package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meduza3/mazeescape/internal/game"
	"github.com/Meduza3/mazeescape/internal/maze"
)

func darken(c rl.Color, factor float32) rl.Color {
	factor = clamp(factor, 0, 1)
	return rl.NewColor(
		uint8(float32(c.R)*factor),
		uint8(float32(c.G)*factor),
		uint8(float32(c.B)*factor),
		c.A,
	)
}

func lighten(c rl.Color, factor float32) rl.Color {
	if factor < 0 {
		factor = 0
	}
	invFactor := 1.0 - factor
	return rl.NewColor(
		uint8(float32(c.R)*invFactor+255*factor),
		uint8(float32(c.G)*invFactor+255*factor),
		uint8(float32(c.B)*invFactor+255*factor),
		c.A,
	)
}

var wallColor = rl.DarkGray
var wallEdge = darken(rl.DarkGray, 0.8) // thin seam between wall blocks
var exitColor = rl.Green
var exitGlow = lighten(rl.Green, 0.55)
var playerColor = rl.Blue

func drawMaze(g *maze.Grid, lay Layout) {
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			x, y, size := lay.Rect(col, row)
			switch g.At(row, col) {
			case maze.Wall:
				rl.DrawRectangle(x, y, size, size, wallColor)
				rl.DrawRectangleLines(x, y, size, size, wallEdge)
			case maze.Exit:
				rl.DrawRectangle(x-2, y-2, size+4, size+4, rl.Fade(exitGlow, 0.6))
				rl.DrawRectangle(x, y, size, size, exitColor)
				rl.DrawRectangleLines(x, y, size, size, rl.Black)
			}
		}
	}
}

func drawPlayer(pos rl.Vector2) {
	rl.DrawCircleV(pos, cellSize/3, playerColor)
}

// drawHUD puts the move counter on the top border row, which is always wall.
func drawHUD(s *game.Session) {
	label := fmt.Sprintf("%s  moves %d", s.Difficulty, s.Player.Moves)
	rl.DrawText(label, 6, (cellSize-16)/2, 16, lighten(wallColor, 0.7))
}
