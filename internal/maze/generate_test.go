package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSupportedSizes(t *testing.T) {
	for _, n := range []int{15, 21, 25} {
		for seed := int64(1); seed <= 5; seed++ {
			g, err := Generate(n, n, NewSeeded(seed))
			require.NoError(t, err)

			start := Point{X: 1, Y: 1}
			assert.Equal(t, Open, g.At(1, 1), "n=%d seed=%d", n, seed)
			assert.True(t, borderIsWall(g), "n=%d seed=%d\n%s", n, seed, g)
			assert.True(t, IsPerfect(g, start), "n=%d seed=%d\n%s", n, seed, g)

			// every room at odd offsets is carved
			for r := 1; r < n-1; r += 2 {
				for c := 1; c < n-1; c += 2 {
					assert.Equal(t, Open, g.At(r, c), "room (%d,%d) n=%d seed=%d", r, c, n, seed)
				}
			}
			// pillars at even offsets are never opened
			for r := 2; r < n-1; r += 2 {
				for c := 2; c < n-1; c += 2 {
					assert.Equal(t, Wall, g.At(r, c))
				}
			}

			// a spanning tree over k rooms has k-1 passages
			rooms := ((n - 1) / 2) * ((n - 1) / 2)
			assert.Equal(t, 2*rooms-1, g.Count(Open))
		}
	}
}

func TestGenerateRejectsTinySizes(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"zero", 0, 0},
		{"narrow", 15, 2},
		{"short", 1, 15},
		{"negative", -3, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Generate(tc.rows, tc.cols, NewSeeded(1))
			assert.ErrorIs(t, err, ErrInvalidSize)
			assert.Nil(t, g)
		})
	}
}

func TestGenerateSmallest(t *testing.T) {
	g, err := Generate(3, 3, NewSeeded(7))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Count(Open))
	assert.Equal(t, Open, g.At(1, 1))
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a, err := Generate(21, 21, NewSeeded(99))
	require.NoError(t, err)
	b, err := Generate(21, 21, NewSeeded(99))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestGenerateScriptedSource(t *testing.T) {
	// A source that always answers 0 still yields a valid perfect maze.
	g, err := Generate(15, 15, &seqSource{vals: []int{0}})
	require.NoError(t, err)
	assert.True(t, IsPerfect(g, Point{X: 1, Y: 1}))
	assert.True(t, borderIsWall(g))
}

func TestGenerateRectangular(t *testing.T) {
	g, err := Generate(9, 17, NewSeeded(3))
	require.NoError(t, err)
	assert.True(t, IsPerfect(g, Point{X: 1, Y: 1}))
	assert.True(t, borderIsWall(g))
	assert.NotNil(t, ShortestPath(g, Point{X: 1, Y: 1}, Point{X: 15, Y: 7}))
}

func TestGenerateEndToEnd(t *testing.T) {
	g, err := Generate(15, 15, NewSeeded(2024))
	require.NoError(t, err)
	g.Set(13, 13, Exit)

	assert.Equal(t, Open, g.At(1, 1))
	assert.Equal(t, Exit, g.At(13, 13))
	assert.True(t, Reachable(g, Point{X: 1, Y: 1}).Has(Point{X: 13, Y: 13}))
}

func TestShuffledStridesIsPermutation(t *testing.T) {
	rng := NewSeeded(5)
	for i := 0; i < 50; i++ {
		d := shuffledStrides(rng)
		assert.ElementsMatch(t, strides[:], d[:])
	}
}
