package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Meduza3/mazeescape/internal/game"
)

// drawWinBanner draws the modal shown once the exit is reached. winSize is
// the (square) window edge in pixels.
func drawWinBanner(s *game.Session, winSize int32) {
	w, h := float32(winSize)-40, float32(170)
	cx := float32(winSize) / 2
	cy := float32(winSize) / 2
	x, y := int32(cx-w/2), int32(cy-h/2)

	// panel
	rl.DrawRectangle(x-4, y-4, int32(w)+8, int32(h)+8, rl.NewColor(0, 0, 0, 40))
	rl.DrawRectangle(x, y, int32(w), int32(h), rl.NewColor(245, 245, 245, 255))
	rl.DrawRectangleLines(x, y, int32(w), int32(h), rl.DarkGray)

	rl.DrawText("You Escaped!", x+18, y+16, 40, rl.Red)

	body := fmt.Sprintf("Moves: %d (shortest route %d)", s.Player.Moves, s.Best)
	drawMultiline(body, x+18, y+70, 20, rl.DarkGray, int(w)-36)

	// footer
	rl.DrawText("Press [Enter] to return to Menu", x+18, y+int32(h)-34, 20, rl.Gray)
}

func drawMultiline(s string, x, y int32, fs int32, col rl.Color, maxWidth int) {
	lines := []string{""}
	for _, word := range splitWordsPreserveNL(s) {
		if word == "\n" {
			lines = append(lines, "")
			continue
		}
		next := lines[len(lines)-1]
		if next != "" {
			next += " "
		}
		next += word
		if rl.MeasureText(next, fs) > int32(maxWidth) && lines[len(lines)-1] != "" {
			// put word on a new line
			lines = append(lines, word)
		} else {
			lines[len(lines)-1] = next
		}
	}
	for i, line := range lines {
		rl.DrawText(line, x, y+int32(i)*(fs+6), fs, col)
	}
}

func splitWordsPreserveNL(s string) []string {
	out, cur := []string{}, ""
	for _, r := range s {
		if r == '\n' {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			out = append(out, "\n")
			continue
		}
		if r == ' ' || r == '\t' {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
		} else {
			cur += string(r)
		}
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}
