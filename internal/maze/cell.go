package maze

// Cell is the render category of a single grid square.
type Cell uint8

const (
	Wall Cell = iota
	Open
	Exit
)

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Exit:
		return "exit"
	}
	return "unknown"
}

// Point is a grid coordinate. X is the column, Y the row.
type Point struct {
	X, Y int
}

func (p Point) Add(d Point) Point { return Point{p.X + d.X, p.Y + d.Y} }
