package main

import (
	"github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meduza3/mazeescape/internal/game"
)

type menuEntry struct {
	label string
	key   int32
	d     game.Difficulty
}

var menuEntries = []menuEntry{
	{"1 - Easy", rl.KeyOne, game.Easy},
	{"2 - Medium", rl.KeyTwo, game.Medium},
	{"3 - Hard", rl.KeyThree, game.Hard},
	{"Q - Quit", rl.KeyQ, game.Quit},
}

// showDifficultyMenu opens the menu window and blocks until a choice is made.
// Closing the window counts as Quit.
func showDifficultyMenu() game.Difficulty {
	rl.InitWindow(menuWidth, menuHeight, menuTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		for _, e := range menuEntries {
			if rl.IsKeyPressed(e.key) {
				return e.d
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		rl.DrawText("Select Maze Difficulty:", 100, 60, 25, rl.Black)

		chosen := game.Difficulty(-1)
		for i, e := range menuEntries {
			bounds := rl.NewRectangle(160, float32(105+i*42), 180, 32)
			if raygui.Button(bounds, e.label) {
				chosen = e.d
			}
		}
		hint := rl.NewRectangle(100, float32(menuHeight-48), 300, 24)
		raygui.Label(hint, "press a number key or click a button")
		rl.EndDrawing()

		if chosen >= 0 {
			return chosen
		}
	}
	return game.Quit
}
