package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meduza3/mazeescape/internal/game"
)

// pollInput reads this frame's edge-triggered keys.
func pollInput() game.Input {
	return game.Input{
		Right:   rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD),
		Left:    rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA),
		Down:    rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS),
		Up:      rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW),
		Confirm: rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter),
		Back:    rl.IsKeyPressed(rl.KeyEscape),
		Close:   rl.WindowShouldClose(),
	}
}
