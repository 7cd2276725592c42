package maze

var neighbors4 = [4]Point{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}

// AddDecoys makes attempts tries at opening a short dead end in solid rock and
// returns how many were placed. A try picks a random interior cell and only
// goes ahead if that cell and its four neighbors are all Wall; otherwise it is
// skipped. The opened cell is then extended by one neighbor, chosen among the
// interior neighbors that touch at most one other open cell, so a decoy can
// hang off the maze but never joins two corridors together.
func AddDecoys(g *Grid, rng Source, attempts int) int {
	if g.rows < minSize || g.cols < minSize {
		return 0
	}
	placed := 0
	for i := 0; i < attempts; i++ {
		p := Point{X: rng.Intn(g.cols-2) + 1, Y: rng.Intn(g.rows-2) + 1}
		if !solidAround(g, p) {
			continue
		}
		g.Set(p.Y, p.X, Open)
		placed++

		var ext [4]Point
		n := 0
		for _, d := range neighbors4 {
			q := p.Add(d)
			if g.Interior(q.Y, q.X) && openNeighbors(g, q, p) <= 1 {
				ext[n] = q
				n++
			}
		}
		if n == 0 {
			continue
		}
		q := ext[rng.Intn(n)]
		g.Set(q.Y, q.X, Open)
	}
	return placed
}

func solidAround(g *Grid, p Point) bool {
	if g.At(p.Y, p.X) != Wall {
		return false
	}
	for _, d := range neighbors4 {
		q := p.Add(d)
		if g.At(q.Y, q.X) != Wall {
			return false
		}
	}
	return true
}

// openNeighbors counts non-Wall neighbors of p, ignoring skip.
func openNeighbors(g *Grid, p, skip Point) int {
	n := 0
	for _, d := range neighbors4 {
		q := p.Add(d)
		if q == skip || !g.InBounds(q.Y, q.X) {
			continue
		}
		if g.At(q.Y, q.X) != Wall {
			n++
		}
	}
	return n
}
