package game

import "fmt"

// Difficulty is the menu choice. Quit ends the program instead of starting a
// session.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Quit
)

// Settings is what a difficulty means for the maze.
type Settings struct {
	Size   int // grid is Size x Size
	Decoys int // decoy attempts after carving
}

var settings = map[Difficulty]Settings{
	Easy:   {Size: 15, Decoys: 0},
	Medium: {Size: 21, Decoys: 20},
	Hard:   {Size: 25, Decoys: 40},
}

// Settings returns the maze parameters, or false for Quit and unknown values.
func (d Difficulty) Settings() (Settings, bool) {
	s, ok := settings[d]
	return s, ok
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}
