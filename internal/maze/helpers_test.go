package maze

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// seqSource replays a fixed list of values, wrapping around when exhausted.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

// parseGrid builds a grid from rows of '#' (wall), ' ' (open) and 'E' (exit).
func parseGrid(t *testing.T, lines ...string) *Grid {
	t.Helper()
	require.NotEmpty(t, lines)
	g := NewGrid(len(lines), len(lines[0]))
	for r, line := range lines {
		require.Len(t, line, g.Cols(), "row %d", r)
		for c, ch := range line {
			switch ch {
			case '#':
				g.Set(r, c, Wall)
			case 'E':
				g.Set(r, c, Exit)
			default:
				g.Set(r, c, Open)
			}
		}
	}
	return g
}

func borderIsWall(g *Grid) bool {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Interior(r, c) {
				continue
			}
			if g.At(r, c) != Wall {
				return false
			}
		}
	}
	return true
}
