// Package game holds the rules around a maze: the difficulty menu, the play
// session and the state machine that moves between them. It knows nothing
// about windows or terminals; frontends feed it one Input per frame and draw
// whatever Phase and Session say.
package game

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Meduza3/mazeescape/internal/maze"
)

type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseWon
	PhaseExited
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseExited:
		return "exited"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Input is the edge-triggered key state of one frame.
type Input struct {
	Right, Left, Down, Up bool
	Confirm               bool // Enter
	Back                  bool // Escape: abandon the maze
	Close                 bool // window or terminal asked to quit
}

// Session is one maze from selection until it is won or abandoned.
type Session struct {
	ID         uuid.UUID
	Difficulty Difficulty
	Grid       *maze.Grid
	Player     Player
	Exit       maze.Point
	Best       int // fewest moves from start to exit
	Decoys     int // decoys actually placed
	Won        bool
}

// NewSession generates the maze for d using rng and places the player on
// (1,1).
func NewSession(d Difficulty, rng maze.Source) (*Session, error) {
	cfg, ok := d.Settings()
	if !ok {
		return nil, fmt.Errorf("no maze for difficulty %s", d)
	}
	g, err := maze.Generate(cfg.Size, cfg.Size, rng)
	if err != nil {
		return nil, fmt.Errorf("generate %s maze: %w", d, err)
	}
	decoys := maze.AddDecoys(g, rng, cfg.Decoys)

	exit := maze.Point{X: cfg.Size - 2, Y: cfg.Size - 2}
	g.Set(exit.Y, exit.X, maze.Exit)

	s := &Session{
		ID:         uuid.New(),
		Difficulty: d,
		Grid:       g,
		Player:     *NewPlayer(1, 1),
		Exit:       exit,
		Decoys:     decoys,
	}
	if path := maze.ShortestPath(g, s.Player.At(), exit); path != nil {
		s.Best = len(path) - 1
	}
	return s, nil
}

// Apply moves the player for one frame of input. Keys are handled in the
// order right, left, down, up, each against the position the previous one
// left behind. It reports whether the exit was reached.
func (s *Session) Apply(in Input) bool {
	if s.Won {
		return true
	}
	if in.Right {
		s.Player.Step(s.Grid, 1, 0)
	}
	if in.Left {
		s.Player.Step(s.Grid, -1, 0)
	}
	if in.Down {
		s.Player.Step(s.Grid, 0, 1)
	}
	if in.Up {
		s.Player.Step(s.Grid, 0, -1)
	}
	if s.Grid.At(s.Player.Y, s.Player.X) == maze.Exit {
		s.Won = true
	}
	return s.Won
}

// Game is the menu/play state machine.
type Game struct {
	Phase   Phase
	Session *Session // nil outside PhasePlaying and PhaseWon

	// NewSource seeds each session. Defaults to maze.NewSessionSource.
	NewSource func() maze.Source

	log *slog.Logger
}

func New(logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		Phase:     PhaseMenu,
		NewSource: func() maze.Source { return maze.NewSessionSource() },
		log:       logger,
	}
}

// Select handles a menu choice. It is ignored outside PhaseMenu.
func (g *Game) Select(d Difficulty) error {
	if g.Phase != PhaseMenu {
		return nil
	}
	if d == Quit {
		g.Phase = PhaseExited
		g.log.Info("quit from menu")
		return nil
	}
	s, err := NewSession(d, g.NewSource())
	if err != nil {
		return err
	}
	g.Session = s
	g.Phase = PhasePlaying
	g.log.Info("session started",
		"session", s.ID,
		"difficulty", d,
		"size", s.Grid.Rows(),
		"decoys", s.Decoys,
		"best", s.Best,
	)
	return nil
}

// Update advances the state machine by one frame.
func (g *Game) Update(in Input) {
	if in.Close {
		if g.Session != nil {
			g.log.Info("window closed", "session", g.Session.ID, "phase", g.Phase)
		}
		g.Session = nil
		g.Phase = PhaseExited
		return
	}

	switch g.Phase {
	case PhasePlaying:
		if in.Back {
			g.log.Info("session abandoned", "session", g.Session.ID, "moves", g.Session.Player.Moves)
			g.toMenu()
			return
		}
		if g.Session.Apply(in) {
			g.Phase = PhaseWon
			g.log.Info("maze escaped",
				"session", g.Session.ID,
				"moves", g.Session.Player.Moves,
				"best", g.Session.Best,
			)
		}
	case PhaseWon:
		if in.Confirm {
			g.toMenu()
		}
	}
}

func (g *Game) toMenu() {
	g.Session = nil
	g.Phase = PhaseMenu
}

func (g *Game) Done() bool { return g.Phase == PhaseExited }
