package main

import rl "github.com/gen2brain/raylib-go/raylib"

// Layout maps grid cells to window pixels.
type Layout struct {
	Origin rl.Vector2 // top-left of grid in pixels
	Cell   float32    // cellSize
}

// Center is the pixel midpoint of column cx, row cy.
func (l Layout) Center(cx, cy int) rl.Vector2 {
	return rl.NewVector2(l.Origin.X+float32(cx)*l.Cell+l.Cell/2,
		l.Origin.Y+float32(cy)*l.Cell+l.Cell/2)
}

// Rect is the pixel square of column cx, row cy.
func (l Layout) Rect(cx, cy int) (x, y, size int32) {
	return int32(l.Origin.X + float32(cx)*l.Cell), int32(l.Origin.Y + float32(cy)*l.Cell), int32(l.Cell)
}
