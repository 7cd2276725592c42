// Command mazeescape-term plays the maze in a terminal.
//
// Keys: 1/2/3 pick a difficulty and q quits from the menu; arrows or WASD
// move; Enter returns to the menu after escaping; Esc abandons the current
// maze; Ctrl-C exits at any time.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/Meduza3/mazeescape/internal/game"
	"github.com/Meduza3/mazeescape/internal/maze"
)

type theme struct {
	bg     tcell.Style
	wall   tcell.Style
	exit   tcell.Style
	player tcell.Style
	text   tcell.Style
	accent tcell.Style
}

var defaultTheme = theme{
	bg:     tcell.StyleDefault,
	wall:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	exit:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	player: tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
	text:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	accent: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

func main() {
	// The screen owns the terminal while running; logs are flushed after.
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))
	defer func() { _, _ = logs.WriteTo(os.Stderr) }()

	s, err := tcell.NewScreen()
	if err != nil {
		logger.Error("create screen", "err", err)
		_, _ = logs.WriteTo(os.Stderr)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		logger.Error("init screen", "err", err)
		_, _ = logs.WriteTo(os.Stderr)
		os.Exit(1)
	}
	defer s.Fini()
	s.HideCursor()

	t := &term{screen: s, theme: defaultTheme, game: game.New(logger), log: logger}
	t.run()
}

type term struct {
	screen tcell.Screen
	theme  theme
	game   *game.Game
	log    *slog.Logger
}

func (t *term) run() {
	for !t.game.Done() {
		t.render()

		switch e := t.screen.PollEvent().(type) {
		case nil:
			return // screen finalized
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			t.handleKey(e)
		}
	}
}

func (t *term) handleKey(e *tcell.EventKey) {
	if e.Key() == tcell.KeyCtrlC {
		t.game.Update(game.Input{Close: true})
		return
	}

	if t.game.Phase == game.PhaseMenu {
		d, ok := menuChoice(e)
		if !ok {
			return
		}
		if err := t.game.Select(d); err != nil {
			t.log.Error("start session", "difficulty", d, "err", err)
		}
		return
	}
	t.game.Update(keyInput(e))
}

func menuChoice(e *tcell.EventKey) (game.Difficulty, bool) {
	if e.Key() != tcell.KeyRune {
		return 0, false
	}
	switch e.Rune() {
	case '1':
		return game.Easy, true
	case '2':
		return game.Medium, true
	case '3':
		return game.Hard, true
	case 'q', 'Q':
		return game.Quit, true
	}
	return 0, false
}

func keyInput(e *tcell.EventKey) game.Input {
	var in game.Input
	switch e.Key() {
	case tcell.KeyRight:
		in.Right = true
	case tcell.KeyLeft:
		in.Left = true
	case tcell.KeyDown:
		in.Down = true
	case tcell.KeyUp:
		in.Up = true
	case tcell.KeyEnter:
		in.Confirm = true
	case tcell.KeyEscape:
		in.Back = true
	case tcell.KeyRune:
		switch e.Rune() {
		case 'd', 'D':
			in.Right = true
		case 'a', 'A':
			in.Left = true
		case 's', 'S':
			in.Down = true
		case 'w', 'W':
			in.Up = true
		}
	}
	return in
}

func (t *term) render() {
	t.screen.Clear()
	switch t.game.Phase {
	case game.PhaseMenu:
		t.drawMenu()
	case game.PhasePlaying, game.PhaseWon:
		t.drawSession(t.game.Session)
	}
	t.screen.Show()
}

func (t *term) drawText(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *term) drawMenu() {
	t.drawText(2, 1, t.theme.text.Bold(true), "Select Maze Difficulty:")
	t.drawText(4, 3, t.theme.text, "1 - Easy")
	t.drawText(4, 4, t.theme.text, "2 - Medium")
	t.drawText(4, 5, t.theme.text, "3 - Hard")
	t.drawText(4, 6, t.theme.accent, "Q - Quit")
}

// Each cell is two terminal columns wide so the maze looks square.
func (t *term) drawSession(s *game.Session) {
	g := s.Grid
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			x := col * 2
			switch {
			case col == s.Player.X && row == s.Player.Y:
				t.drawText(x, row, t.theme.player, "()")
			case g.At(row, col) == maze.Wall:
				t.drawText(x, row, t.theme.wall, "██")
			case g.At(row, col) == maze.Exit:
				t.drawText(x, row, t.theme.exit, "[]")
			default:
				t.drawText(x, row, t.theme.bg, "  ")
			}
		}
	}

	y := g.Rows() + 1
	t.drawText(0, y, t.theme.text, fmt.Sprintf("%s  moves %d  (esc: menu, ctrl-c: quit)", s.Difficulty, s.Player.Moves))
	if s.Won {
		t.drawText(0, y+2, t.theme.accent, "You Escaped!")
		t.drawText(0, y+3, t.theme.text, fmt.Sprintf("Moves: %d (shortest route %d)", s.Player.Moves, s.Best))
		t.drawText(0, y+4, t.theme.text, "Press [Enter] to return to Menu")
	}
}
