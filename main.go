package main

import (
	"log/slog"
	"os"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meduza3/mazeescape/internal/game"
)

const (
	cellSize  = 28 // pixels per maze cell
	targetFPS = 60

	menuWidth  = 500
	menuHeight = 350

	playTitle = "Maze Escape - Choose Your Challenge"
	menuTitle = "Select Difficulty"
)

func main() {
	runtime.LockOSThread() // <-- must be first on macOS

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	rl.SetTraceLogLevel(rl.LogWarning)

	g := game.New(logger)
	for !g.Done() {
		switch g.Phase {
		case game.PhaseMenu:
			d := showDifficultyMenu()
			if err := g.Select(d); err != nil {
				logger.Error("start session", "difficulty", d, "err", err)
			}
		case game.PhasePlaying, game.PhaseWon:
			play(g)
		}
	}
}

// play runs the maze window until the session ends one way or another.
func play(g *game.Game) {
	s := g.Session
	n := int32(s.Grid.Rows())

	rl.InitWindow(n*cellSize, n*cellSize, playTitle)
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(0) // Escape goes back to the menu instead

	lay := Layout{Origin: rl.NewVector2(0, 0), Cell: cellSize}
	glide := lay.Center(s.Player.X, s.Player.Y)

	for {
		g.Update(pollInput())
		if g.Session != s {
			return
		}

		// Smoothly follow player
		glide = updateGlide(glide, lay.Center(s.Player.X, s.Player.Y), rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		drawMaze(s.Grid, lay)
		drawPlayer(glide)
		drawHUD(s)
		if s.Won {
			drawWinBanner(s, n*cellSize)
		}
		rl.EndDrawing()
	}
}
